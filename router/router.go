// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/handlers"
	"github.com/danielhkuo/bayroumeter/metrics"
	"github.com/danielhkuo/bayroumeter/middleware"
)

// Route binds a method+path pattern to a handler
type Route struct {
	Pattern string
	Handler http.HandlerFunc
}

// Routes builds the route table of the poll API
func Routes(repo db.Repository, m *metrics.Metrics) []Route {
	usersHandler := handlers.NewUsersHandler(repo, m)
	votesHandler := handlers.NewVotesHandler(repo, m)
	resultsHandler := handlers.NewResultsHandler(repo)

	return []Route{
		// Users
		{"POST /postUser", usersHandler.PostUser},
		{"GET /users", usersHandler.GetUsers},

		// Votes
		{"POST /postVote", votesHandler.PostVote},
		{"GET /votes", votesHandler.GetVotes},

		// Results
		{"GET /resultat", resultsHandler.GetResult},
	}
}

func NewRouter(repo db.Repository, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", m.Handler())

	for _, route := range Routes(repo, m) {
		mux.HandleFunc(route.Pattern, middleware.WithLogging(route.Handler))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bayroumeter API v1"))
	})

	return mux
}
