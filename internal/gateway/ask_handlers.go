// ABOUTME: HTTP handlers for the model-backed ask and interpret endpoints
// ABOUTME: Assembles prompts from store snapshots and records phrase usage

package gateway

import (
	"net/http"

	"github.com/2389/persona-gateway/internal/llm"
	"github.com/2389/persona-gateway/internal/persona"
	"github.com/2389/persona-gateway/internal/prompt"
	"github.com/2389/persona-gateway/internal/store"
)

// interpretationSchema is reflected once; the shape never changes at runtime
var interpretationSchema = llm.GenerateSchema[prompt.Interpretation]()

// AskRequest is the JSON request body for POST /ask.
type AskRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
}

// AskResponse is the JSON response for POST /ask.
type AskResponse struct {
	Answer string `json:"answer"`
}

// InterpretRequest is the JSON request body for POST /interpret.
type InterpretRequest struct {
	Text string `json:"text"`
}

// RawResponse carries unparseable model output back to the caller verbatim.
type RawResponse struct {
	Raw string `json:"raw"`
}

func (g *Gateway) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Query == "" || req.Mode == "" {
		writeError(w, http.StatusBadRequest, "missing query or mode")
		return
	}

	ctx := r.Context()
	memory := g.phrases.TopSnapshot(ctx, store.DefaultTopPhrases)
	facts := g.facts.Snapshot(ctx)
	system := prompt.AskSystemPrompt(req.Mode, memory, facts)

	answer, err := g.model.Answer(ctx, system, req.Query)
	if err != nil {
		g.logger.Error("ask failed", "error", err)
		writeError(w, http.StatusInternalServerError, "ask failed")
		return
	}

	// Style memory only tracks the casual voice
	if req.Mode == persona.ModeCasual {
		if used := g.profile.DetectPhrases(answer); len(used) > 0 {
			if err := g.phrases.RecordUsage(ctx, used); err != nil {
				g.logger.Warn("recording phrase usage failed", "error", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, AskResponse{Answer: answer})
}

func (g *Gateway) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req InterpretRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "missing required field: text")
		return
	}

	raw, err := g.model.Structured(r.Context(), prompt.InterpreterSystemPrompt,
		"message_from_persona: "+req.Text, "persona_interpretation", interpretationSchema)
	if err != nil {
		g.logger.Error("interpret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "interpreter failed")
		return
	}

	var out prompt.Interpretation
	if err := llm.DecodeModelJSON(raw, &out); err != nil {
		// The model broke the schema contract; hand back what it said
		g.logger.Warn("interpretation output was not valid JSON", "error", err)
		writeJSON(w, http.StatusOK, RawResponse{Raw: raw})
		return
	}

	writeJSON(w, http.StatusOK, out)
}
