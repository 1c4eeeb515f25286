package chatbot

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleChat — POST /api/ai/chat. A well-formed body always gets a 200 with
// a reply; degradation shows up only in the reply text.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	req.CallerID = callerIdentity(r)

	res := h.svc.Chat(r.Context(), req)

	log.Info().
		Str("caller", req.CallerID).
		Str("disposition", res.Disposition.String()).
		Msg("chat request handled")

	writeJSON(w, Response{Reply: res.Reply})
}

// HandleFallbackOnly — POST /api/ai/fallback-only, canned replies with no
// upstream involvement.
func (h *Handler) HandleFallbackOnly(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	writeJSON(w, Response{Reply: h.svc.FallbackReply(req.Message)})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Chat service is running"))
}

// callerIdentity derives a throttling key from the remote address. It is
// best-effort: proxies collapse callers onto one key.
func callerIdentity(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return DefaultCallerID
	}
	return host
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}
