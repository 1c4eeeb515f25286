package chatbot

import (
	"context"

	"github.com/pizzachain/pizzachain-backend/internal/ai"
)

// DefaultCallerID is used when the transport layer supplies no identity.
const DefaultCallerID = "default-user"

type Request struct {
	Message string `json:"message"`

	// CallerID is filled in by the HTTP layer from the remote address.
	// It is advisory only and never authenticated.
	CallerID string `json:"-"`
}

type Response struct {
	Reply string `json:"reply"`
}

// Disposition tells the caller which path produced the reply. Notices in
// the reply text are for end users only; callers branch on this value.
type Disposition int

const (
	// DispositionPrimary — upstream answered, reply is verbatim.
	DispositionPrimary Disposition = iota
	// DispositionInvalid — blank message, fixed guidance reply.
	DispositionInvalid
	// DispositionThrottled — local rate limit, fixed wait reply.
	DispositionThrottled
	// DispositionFallbackOnly — upstream skipped by configuration.
	DispositionFallbackOnly
	// DispositionDegraded — upstream attempted and failed, canned reply.
	DispositionDegraded
	// DispositionRecovered — panic caught at the gateway boundary.
	DispositionRecovered
)

func (d Disposition) String() string {
	switch d {
	case DispositionPrimary:
		return "primary"
	case DispositionInvalid:
		return "invalid"
	case DispositionThrottled:
		return "throttled"
	case DispositionFallbackOnly:
		return "fallback_only"
	case DispositionDegraded:
		return "degraded"
	default:
		return "recovered"
	}
}

type Result struct {
	Reply       string
	Disposition Disposition

	// Outcome is the upstream classification when Disposition is
	// DispositionDegraded; OutcomeSuccess otherwise.
	Outcome ai.OutcomeKind
}

// Service — gateway orchestration. Chat always produces a Result; every
// failure past validation collapses into a canned reply.
type Service interface {
	Chat(ctx context.Context, req Request) Result
	FallbackReply(message string) string
}
