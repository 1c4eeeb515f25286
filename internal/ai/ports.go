package ai

import "context"

// OutcomeKind classifies the result of one upstream completion attempt.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRateLimited
	OutcomeAuthError
	OutcomeQuotaExceeded
	OutcomeTimeout
	OutcomeNetworkError
	OutcomeMalformedResponse
	OutcomeConfigError
	OutcomeUnexpected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeAuthError:
		return "auth_error"
	case OutcomeQuotaExceeded:
		return "quota_exceeded"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeNetworkError:
		return "network_error"
	case OutcomeMalformedResponse:
		return "malformed_response"
	case OutcomeConfigError:
		return "config_error"
	default:
		return "unexpected"
	}
}

// Outcome is the classified result of an upstream call. Text is set only
// for OutcomeSuccess.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

func Success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Chat — upstream completion provider; knows nothing about throttling or
// fallback routing. Send never returns a Go error: every failure mode is
// folded into the Outcome classification.
type Chat interface {
	Send(ctx context.Context, message string) Outcome
}
