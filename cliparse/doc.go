// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 7071)
  - DatabaseURL: connection string or file path (required)
  - DatabaseType: sqlite, postgres or mongo (default: sqlite)
  - DatabaseName: Mongo database name (default: sondage-db)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-db-name    Database name
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DATABASE_NAME → -db-name
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables. LoadEnv reads a
.env file into the environment first, without overriding variables that
are already set:

	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal(err)
	}

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number in 1-65535
  - DATABASE_TYPE is not one of sqlite, postgres, mongo
  - LOG_LEVEL is not a slog level name
*/
package cliparse
