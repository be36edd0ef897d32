// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the poll API.

# Route Registration

Routes builds the explicit route table; NewRouter registers it on a
fresh http.ServeMux:

	mux := router.NewRouter(repo, m)

# Endpoints

Service:

	GET /health   - Liveness
	GET /metrics  - Prometheus metrics
	GET /         - Banner

Users:

	POST /postUser - Register {pseudo, email}
	GET  /users    - List users

Votes:

	POST /postVote?userId=ID - Cast {choice}
	GET  /votes              - List votes

Results:

	GET /resultat - Oui/Non tally with percentages

Every API route is wrapped in middleware.WithLogging.
*/
package router
