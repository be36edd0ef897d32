// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/metrics"
	"github.com/danielhkuo/bayroumeter/models"
)

const opCastVote = "cast_vote"

type VoteRegistry struct {
	repo    db.Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewVoteRegistry(repo db.Repository, m *metrics.Metrics) *VoteRegistry {
	return &VoteRegistry{repo: repo, metrics: m, now: time.Now}
}

// CheckUserID validates the userId reference on its own, so callers can
// report it before parsing the request body.
func CheckUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", validationError(MsgMissingUserID)
	}
	return userID, nil
}

// CastVote records one vote for an existing user who has not voted yet.
// Checks run in order and the first failure wins: userId present, choice
// valid, user exists, no previous vote.
func (r *VoteRegistry) CastVote(ctx context.Context, userID, choice string) (models.Vote, error) {
	vote, err := r.castVote(ctx, userID, choice)
	if err != nil {
		r.metrics.Rejected(opCastVote, string(KindOf(err)))
		return models.Vote{}, err
	}
	r.metrics.VoteCast(vote.Choice)
	return vote, nil
}

// Reject counts a vote refused before CastVote was reached, such as a
// missing userId or an unreadable body, and returns err unchanged.
func (r *VoteRegistry) Reject(err error) error {
	r.metrics.Rejected(opCastVote, string(KindOf(err)))
	return err
}

func (r *VoteRegistry) castVote(ctx context.Context, userID, choice string) (models.Vote, error) {
	userID, err := CheckUserID(userID)
	if err != nil {
		return models.Vote{}, err
	}

	choice = strings.TrimSpace(choice)
	if !models.IsValidChoice(choice) {
		return models.Vote{}, validationError(MsgInvalidChoice)
	}

	_, err = r.repo.FindUserByID(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Vote{}, notFoundError(MsgUnknownUser)
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err, "user_id", userID)
		return models.Vote{}, internalError(MsgDatabaseError, err)
	}

	_, err = r.repo.FindVoteByUserID(ctx, userID)
	if err == nil {
		return models.Vote{}, conflictError(MsgAlreadyVoted)
	}
	if !errors.Is(err, db.ErrNotFound) {
		slog.Error("failed to look up vote", "error", err, "user_id", userID)
		return models.Vote{}, internalError(MsgDatabaseError, err)
	}

	vote := models.Vote{
		ID:        uuid.NewString(),
		UserID:    userID,
		Choice:    choice,
		CreatedAt: r.now().UTC(),
	}

	err = r.repo.InsertVote(ctx, vote)
	if errors.Is(err, db.ErrDuplicate) {
		// A concurrent request for the same user committed first
		return models.Vote{}, conflictError(MsgAlreadyVoted)
	}
	if err != nil {
		slog.Error("failed to insert vote", "error", err, "user_id", userID)
		return models.Vote{}, internalError(MsgDatabaseError, err)
	}

	slog.Info("vote recorded", "vote_id", vote.ID, "user_id", userID, "choice", choice)
	return vote, nil
}

// VoteLister is the read-only projection of recorded votes
type VoteLister struct {
	repo db.Repository
}

func NewVoteLister(repo db.Repository) *VoteLister {
	return &VoteLister{repo: repo}
}

// ListAll returns every recorded vote. Order is whatever the store returns.
func (r *VoteLister) ListAll(ctx context.Context) ([]models.Vote, error) {
	votes, err := r.repo.ListVotes(ctx)
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		return nil, internalError(MsgDatabaseError, err)
	}
	if votes == nil {
		votes = []models.Vote{}
	}
	return votes, nil
}
