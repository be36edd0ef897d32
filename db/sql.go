// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/bayroumeter/models"
)

// SQLRepository stores users and votes in PostgreSQL or SQLite.
// Queries use $n placeholders, which both drivers accept.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, `
		SELECT id, pseudo, email, created_at FROM users WHERE email = $1
	`, email)
}

func (r *SQLRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, `
		SELECT id, pseudo, email, created_at FROM users WHERE id = $1
	`, id)
}

func (r *SQLRepository) findUser(ctx context.Context, query string, arg string) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Pseudo, &u.Email, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *SQLRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pseudo, email, created_at FROM users
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Pseudo, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.CreatedAt = u.CreatedAt.UTC()
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *SQLRepository) InsertUser(ctx context.Context, user models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, pseudo, email, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Pseudo, user.Email, user.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindVoteByUserID(ctx context.Context, userID string) (models.Vote, error) {
	var v models.Vote
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, choice, created_at FROM votes WHERE user_id = $1
	`, userID).Scan(&v.ID, &v.UserID, &v.Choice, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return v, nil
}

func (r *SQLRepository) ListVotes(ctx context.Context) ([]models.Vote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, choice, created_at FROM votes
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.Choice, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.CreatedAt = v.CreatedAt.UTC()
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return votes, nil
}

func (r *SQLRepository) CountVotesByChoice(ctx context.Context) ([]models.ChoiceCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT choice, COUNT(*) FROM votes GROUP BY choice
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	var counts []models.ChoiceCount
	for rows.Next() {
		var c models.ChoiceCount
		if err := rows.Scan(&c.Choice, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}

	return counts, nil
}

func (r *SQLRepository) InsertVote(ctx context.Context, vote models.Vote) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO votes (id, user_id, choice, created_at)
		VALUES ($1, $2, $3, $4)
	`, vote.ID, vote.UserID, vote.Choice, vote.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// isUniqueViolation recognises unique/primary key violations from both drivers
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		// Extended codes disabled: fall back to the message
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}
