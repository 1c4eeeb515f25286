package chatbot

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pizzachain/pizzachain-backend/internal/ai"
)

type mockUpstream struct {
	outcome   ai.Outcome
	calls     int
	lastSent  string
	panicWith any
}

func (m *mockUpstream) Send(_ context.Context, message string) ai.Outcome {
	m.calls++
	m.lastSent = message
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.outcome
}

func newTestService(upstream ai.Chat, fallbackOnly bool) (Service, *Limiter) {
	limiter := NewLimiter(DefaultMinInterval, DefaultRetention)
	fallback := NewFallback(rand.New(rand.NewSource(1)))
	return NewService(upstream, limiter, fallback, fallbackOnly), limiter
}

func TestChatBlankMessage(t *testing.T) {
	up := &mockUpstream{outcome: ai.Success("ignored")}
	svc, limiter := newTestService(up, false)

	for _, msg := range []string{"", "   ", "\n\t"} {
		res := svc.Chat(context.Background(), Request{Message: msg, CallerID: "alice"})
		require.Equal(t, DispositionInvalid, res.Disposition)
		require.Equal(t, "Please provide a message.", res.Reply)
	}

	// Neither the limiter nor the upstream saw anything.
	require.Zero(t, up.calls)
	require.Zero(t, limiter.size())
}

func TestChatPrimaryReplyIsVerbatim(t *testing.T) {
	up := &mockUpstream{outcome: ai.Success("T")}
	svc, _ := newTestService(up, false)

	res := svc.Chat(context.Background(), Request{Message: " hello ", CallerID: "alice"})
	require.Equal(t, DispositionPrimary, res.Disposition)
	require.Equal(t, "T", res.Reply)
	require.Equal(t, "hello", up.lastSent)
}

func TestChatThrottlesRapidCalls(t *testing.T) {
	up := &mockUpstream{outcome: ai.Success("ok")}
	svc, limiter := newTestService(up, false)

	clock := newFakeClock()
	limiter.now = clock.Now

	first := svc.Chat(context.Background(), Request{Message: "hi", CallerID: "alice"})
	require.Equal(t, DispositionPrimary, first.Disposition)

	clock.Advance(2 * time.Second)
	second := svc.Chat(context.Background(), Request{Message: "hi again", CallerID: "alice"})
	require.Equal(t, DispositionThrottled, second.Disposition)
	require.Equal(t, rateLimitReply, second.Reply)
	require.Equal(t, 1, up.calls)

	// A different caller is unaffected.
	other := svc.Chat(context.Background(), Request{Message: "hi", CallerID: "bob"})
	require.Equal(t, DispositionPrimary, other.Disposition)

	// The same caller is admitted again once the interval has passed.
	clock.Advance(time.Second)
	third := svc.Chat(context.Background(), Request{Message: "hi once more", CallerID: "alice"})
	require.Equal(t, DispositionPrimary, third.Disposition)
}

func TestChatDefaultsCallerIdentity(t *testing.T) {
	up := &mockUpstream{outcome: ai.Success("ok")}
	svc, limiter := newTestService(up, false)
	limiter.now = newFakeClock().Now

	svc.Chat(context.Background(), Request{Message: "hi"})
	require.False(t, limiter.Admit(DefaultCallerID))
}

func TestChatDegradedAppendsNotice(t *testing.T) {
	kinds := []ai.OutcomeKind{
		ai.OutcomeRateLimited,
		ai.OutcomeAuthError,
		ai.OutcomeQuotaExceeded,
		ai.OutcomeTimeout,
		ai.OutcomeNetworkError,
		ai.OutcomeMalformedResponse,
		ai.OutcomeConfigError,
		ai.OutcomeUnexpected,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			up := &mockUpstream{outcome: ai.Outcome{Kind: kind}}
			svc, _ := newTestService(up, false)

			// Pricing has a single canned reply, so the full text is known.
			res := svc.Chat(context.Background(), Request{Message: "how much is a large", CallerID: "c-" + kind.String()})
			require.Equal(t, DispositionDegraded, res.Disposition)
			require.Equal(t, kind, res.Outcome)
			require.Equal(t, repliesFor(CategoryPricing)[0]+degradedNotice, res.Reply)
		})
	}
}

func TestChatFallbackOnlySkipsUpstream(t *testing.T) {
	up := &mockUpstream{outcome: ai.Success("would succeed")}
	svc, _ := newTestService(up, true)

	res := svc.Chat(context.Background(), Request{Message: "how much is a large", CallerID: "alice"})
	require.Equal(t, DispositionFallbackOnly, res.Disposition)
	require.Equal(t, repliesFor(CategoryPricing)[0], res.Reply)
	require.Zero(t, up.calls)
}

func TestChatRecoversFromPanic(t *testing.T) {
	up := &mockUpstream{panicWith: "boom"}
	svc, _ := newTestService(up, false)

	res := svc.Chat(context.Background(), Request{Message: "how much is a large", CallerID: "alice"})
	require.Equal(t, DispositionRecovered, res.Disposition)
	require.Equal(t, repliesFor(CategoryPricing)[0]+recoveredNotice, res.Reply)
	require.True(t, strings.Contains(res.Reply, "technical difficulties"))
}

func TestFallbackReplyBypassesEverything(t *testing.T) {
	up := &mockUpstream{outcome: ai.Success("primary")}
	svc, limiter := newTestService(up, false)

	reply := svc.FallbackReply("when do you open")
	require.Equal(t, repliesFor(CategoryHours)[0], reply)
	require.Zero(t, up.calls)
	require.Zero(t, limiter.size())
}
