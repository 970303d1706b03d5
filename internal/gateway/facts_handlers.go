// ABOUTME: Admin-only HTTP handlers for the persona fact store
// ABOUTME: Snapshot, wholesale replace, single add, and single remove

package gateway

import (
	"net/http"
)

// ReplaceFactsRequest is the JSON request body for PUT /facts.
type ReplaceFactsRequest struct {
	Facts []string `json:"facts"`
}

// SingleFactRequest is the JSON request body for POST and DELETE /facts.
type SingleFactRequest struct {
	Fact string `json:"fact"`
}

func (g *Gateway) handleFactsGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.facts.Snapshot(r.Context()))
}

func (g *Gateway) handleFactsReplace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceFactsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := g.facts.Replace(r.Context(), req.Facts)
	if err != nil {
		g.logger.Error("replacing facts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "updating facts failed")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (g *Gateway) handleFactsAdd(w http.ResponseWriter, r *http.Request) {
	var req SingleFactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := g.facts.Add(r.Context(), req.Fact)
	if err != nil {
		g.logger.Error("adding fact failed", "error", err)
		writeError(w, http.StatusInternalServerError, "updating facts failed")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (g *Gateway) handleFactsRemove(w http.ResponseWriter, r *http.Request) {
	var req SingleFactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := g.facts.Remove(r.Context(), req.Fact)
	if err != nil {
		g.logger.Error("removing fact failed", "error", err)
		writeError(w, http.StatusInternalServerError, "updating facts failed")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
