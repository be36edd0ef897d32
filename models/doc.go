// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterUserRequest: pseudo, email
  - CastVoteRequest: choice

# Domain Types

  - User: registered voter (id, pseudo, email, createdAt)
  - UserSummary: public projection of a User (no createdAt)
  - Vote: one vote per user (id, userId, choice, createdAt)
  - ChoiceCount: one row of the grouped count aggregate

# Result Types

  - ResultSummary: total, counts and percentages per choice

# Constants

Choices:

	ChoiceOui = "Oui"
	ChoiceNon = "Non"

# Error response

	ErrorResponse: {"error": "message"}
*/
package models
