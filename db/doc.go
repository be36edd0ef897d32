// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the storage layer for users and votes.

# Opening a Store

Open picks the backend from the configuration:

	repo, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer repo.Close()

Supported DATABASE_TYPE values:

  - sqlite: modernc.org/sqlite (pure Go, default, used by tests)
  - postgres: github.com/lib/pq
  - mongo: go.mongodb.org/mongo-driver/v2

# Repository

All backends implement Repository:

	FindUserByEmail, FindUserByID, ListUsers, InsertUser
	FindVoteByUserID, ListVotes, CountVotesByChoice, InsertVote

Lookups return ErrNotFound when nothing matches. Inserts return
ErrDuplicate when a uniqueness rule is violated.

# Schema Creation

CreateSchema initializes the SQL tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The Mongo backend does the same with EnsureIndexes.

# Tables

  - users: id, pseudo, email (unique), created_at
  - votes: id, user_id (unique), choice ('Oui' or 'Non'), created_at

# Uniqueness

Email and vote-per-user uniqueness are enforced by the store itself
(UNIQUE constraints, or unique indexes in Mongo), so two concurrent
requests cannot both succeed.
*/
package db
