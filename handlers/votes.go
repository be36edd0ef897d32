// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/metrics"
	"github.com/danielhkuo/bayroumeter/middleware"
	"github.com/danielhkuo/bayroumeter/models"
	"github.com/danielhkuo/bayroumeter/voting"
)

type VotesHandler struct {
	votes  *voting.VoteRegistry
	lister *voting.VoteLister
}

func NewVotesHandler(repo db.Repository, m *metrics.Metrics) *VotesHandler {
	return &VotesHandler{
		votes:  voting.NewVoteRegistry(repo, m),
		lister: voting.NewVoteLister(repo),
	}
}

// PostVote handles POST /postVote?userId=ID
// The userId check runs before the body is read
func (h *VotesHandler) PostVote(w http.ResponseWriter, r *http.Request) {
	userID, err := voting.CheckUserID(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, h.votes.Reject(err), http.StatusConflict)
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		writeError(w, h.votes.Reject(voting.InvalidBody()), http.StatusConflict)
		return
	}

	vote, err := h.votes.CastVote(r.Context(), userID, req.Choice)
	if err != nil {
		writeError(w, err, http.StatusConflict)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// GetVotes handles GET /votes
func (h *VotesHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.lister.ListAll(r.Context())
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}
