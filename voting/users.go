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

const opRegisterUser = "register_user"

type UserRegistry struct {
	repo    db.Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewUserRegistry(repo db.Repository, m *metrics.Metrics) *UserRegistry {
	return &UserRegistry{repo: repo, metrics: m, now: time.Now}
}

// Register creates a user unless one with the same email (case-insensitive)
// already exists. Nothing is written on any failure path.
func (r *UserRegistry) Register(ctx context.Context, pseudo, email string) (models.UserSummary, error) {
	user, err := r.register(ctx, pseudo, email)
	if err != nil {
		r.metrics.Rejected(opRegisterUser, string(KindOf(err)))
		return models.UserSummary{}, err
	}
	r.metrics.UserRegistered()
	return user.Summary(), nil
}

// Reject counts a registration refused before Register was reached, such
// as an unreadable body, and returns err unchanged.
func (r *UserRegistry) Reject(err error) error {
	r.metrics.Rejected(opRegisterUser, string(KindOf(err)))
	return err
}

func (r *UserRegistry) register(ctx context.Context, pseudo, email string) (models.User, error) {
	pseudo = strings.TrimSpace(pseudo)
	email = strings.ToLower(strings.TrimSpace(email))
	if pseudo == "" || email == "" {
		return models.User{}, validationError(MsgMissingUserFields)
	}

	_, err := r.repo.FindUserByEmail(ctx, email)
	if err == nil {
		return models.User{}, conflictError(MsgUserExists)
	}
	if !errors.Is(err, db.ErrNotFound) {
		slog.Error("failed to look up user by email", "error", err)
		return models.User{}, internalError(MsgDatabaseError, err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Pseudo:    pseudo,
		Email:     email,
		CreatedAt: r.now().UTC(),
	}

	err = r.repo.InsertUser(ctx, user)
	if errors.Is(err, db.ErrDuplicate) {
		// Lost a race with a concurrent registration of the same email
		return models.User{}, conflictError(MsgUserExists)
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		return models.User{}, internalError(MsgDatabaseError, err)
	}

	slog.Info("user registered", "user_id", user.ID)
	return user, nil
}

// List returns every registered user, projected to {id, pseudo, email}
func (r *UserRegistry) List(ctx context.Context) ([]models.UserSummary, error) {
	users, err := r.repo.ListUsers(ctx)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return nil, internalError(MsgDatabaseError, err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}
