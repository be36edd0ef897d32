// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/danielhkuo/bayroumeter/cliparse"
	"github.com/danielhkuo/bayroumeter/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Repository is the storage boundary for users and votes.
// Lookups return ErrNotFound when nothing matches; inserts return
// ErrDuplicate when a uniqueness rule (email, vote per user) is violated.
type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	InsertUser(ctx context.Context, user models.User) error

	FindVoteByUserID(ctx context.Context, userID string) (models.Vote, error)
	ListVotes(ctx context.Context) ([]models.Vote, error)
	CountVotesByChoice(ctx context.Context) ([]models.ChoiceCount, error)
	InsertVote(ctx context.Context, vote models.Vote) error

	Close() error
}

// Open connects to the store selected by cfg.DatabaseType and makes sure
// its tables or collections exist.
func Open(ctx context.Context, cfg cliparse.Config) (Repository, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMongo:
		repo, err := NewMongoRepository(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case cliparse.DatabasePostgres, cliparse.DatabaseSQLite:
		conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		if cfg.DatabaseType == cliparse.DatabaseSQLite {
			// database/sql would otherwise hand out independent in-memory databases
			conn.SetMaxOpenConns(1)
		}

		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}

		if err := CreateSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}

		return NewSQLRepository(conn), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

var (
	_ Repository = (*SQLRepository)(nil)
	_ Repository = (*MongoRepository)(nil)
)
