// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the BayrouMeter API server.

BayrouMeter is a binary "Oui"/"Non" poll: users register with a pseudo and
an email, each user votes once, and the tally is public.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:bayroumeter.db go run .

Or with flags:

	go run . -p 7071 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (SQLite path, PostgreSQL or MongoDB URI)

Optional settings:

  - PORT (-p): Server port (default: 7071)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - DATABASE_NAME (-db-name): Mongo database (default: sondage-db)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

# Architecture

  - handlers: HTTP request handlers (users, votes, results)
  - router: Explicit route table on a Go 1.22+ ServeMux
  - middleware: CORS, logging, JSON helpers
  - voting: Registration, vote and tally logic with typed errors
  - db: Repository over SQLite, PostgreSQL or MongoDB
  - metrics: Prometheus counters
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
