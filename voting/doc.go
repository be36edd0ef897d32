// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the Oui/Non poll workflow on top of a
db.Repository.

# Components

  - UserRegistry: Register (unique, lower-cased email) and List
  - VoteRegistry: CastVote (one vote per existing user)
  - VoteLister: ListAll
  - ResultAggregator: ComputeResult (counts and percentages)

Components never call each other; the repository is the only shared state.

# Errors

Every operation returns *Error with a Kind:

	KindValidation → malformed or missing input
	KindConflict   → email taken, or user already voted
	KindNotFound   → vote for an unknown user
	KindInternal   → store failure

Use KindOf and MessageOf to map an error to a response.

# Vote Validation Order

CastVote stops at the first failing check:

 1. userId non-empty after trimming
 2. request body parses (checked by the caller, see InvalidBody)
 3. choice is "Oui" or "Non" after trimming
 4. the user exists
 5. the user has not voted
*/
package voting
