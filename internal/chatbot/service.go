package chatbot

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pizzachain/pizzachain-backend/internal/ai"
)

// Fixed replies and notices. These are end-user text only; control flow
// always goes through Result.Disposition.
const (
	emptyMessageReply = "Please provide a message."
	rateLimitReply    = "⏱️ Please wait a moment before sending another message."
	degradedNotice    = "\n\n💡 *Note: I'm currently using simplified responses due to high demand. Full AI features will return shortly!*"
	recoveredNotice   = "\n\n⚠️ *Experiencing technical difficulties - using basic responses temporarily*"
)

type service struct {
	upstream     ai.Chat
	limiter      *Limiter
	fallback     *Fallback
	fallbackOnly bool
}

func NewService(upstream ai.Chat, limiter *Limiter, fallback *Fallback, fallbackOnly bool) Service {
	return &service{
		upstream:     upstream,
		limiter:      limiter,
		fallback:     fallback,
		fallbackOnly: fallbackOnly,
	}
}

func (s *service) Chat(ctx context.Context, req Request) (res Result) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		log.Warn().Msg("empty chat message received")
		return Result{Reply: emptyMessageReply, Disposition: DispositionInvalid}
	}

	// Nothing past validation may escape the gateway boundary.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("panic in chat pipeline")
			res = Result{
				Reply:       s.fallback.Respond(message) + recoveredNotice,
				Disposition: DispositionRecovered,
			}
		}
	}()

	if s.fallbackOnly {
		log.Info().Msg("fallback-only mode, skipping upstream")
		return Result{Reply: s.fallback.Respond(message), Disposition: DispositionFallbackOnly}
	}

	callerID := req.CallerID
	if callerID == "" {
		callerID = DefaultCallerID
	}

	if !s.limiter.Admit(callerID) {
		log.Warn().Str("caller", callerID).Msg("rate limiting caller")
		return Result{Reply: rateLimitReply, Disposition: DispositionThrottled}
	}
	s.limiter.Record(callerID)

	out := s.upstream.Send(ctx, message)
	if out.OK() {
		return Result{Reply: out.Text, Disposition: DispositionPrimary}
	}

	log.Warn().
		Str("caller", callerID).
		Str("outcome", out.Kind.String()).
		Msg("upstream unavailable, serving fallback")

	return Result{
		Reply:       s.fallback.Respond(message) + degradedNotice,
		Disposition: DispositionDegraded,
		Outcome:     out.Kind,
	}
}

func (s *service) FallbackReply(message string) string {
	return s.fallback.Respond(message)
}
