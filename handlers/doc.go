// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll API.

# Handler Types

Each handler wraps one or more voting components built on the repository:

  - UsersHandler: registration and user listing
  - VotesHandler: vote submission and vote listing
  - ResultsHandler: aggregated Oui/Non tally

	usersHandler := handlers.NewUsersHandler(repo, m)

# Endpoints

	POST /postUser           → PostUser  (201, 400, 403)
	GET  /users              → GetUsers  (200, 500)
	POST /postVote?userId=ID → PostVote  (201, 400, 404, 409)
	GET  /votes              → GetVotes  (200)
	GET  /resultat           → GetResult (200, 500)

# Errors

voting error kinds map to statuses:

	KindValidation → 400
	KindConflict   → 403 on /postUser, 409 on /postVote
	KindNotFound   → 404
	KindInternal   → 500

Every error body is {"error": "message"}.
*/
package handlers
