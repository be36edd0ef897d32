// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/middleware"
	"github.com/danielhkuo/bayroumeter/voting"
)

type ResultsHandler struct {
	aggregator *voting.ResultAggregator
}

func NewResultsHandler(repo db.Repository) *ResultsHandler {
	return &ResultsHandler{aggregator: voting.NewResultAggregator(repo)}
}

// GetResult handles GET /resultat
// Returns {total, counts: {Oui, Non}, percent: {Oui, Non}}
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.aggregator.ComputeResult(r.Context())
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
