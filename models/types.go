package models

import "time"

// Poll choices
const (
	ChoiceOui = "Oui"
	ChoiceNon = "Non"
)

// Choices lists every accepted choice, in display order.
var Choices = []string{ChoiceOui, ChoiceNon}

// IsValidChoice reports whether c is one of the poll choices (exact match).
func IsValidChoice(c string) bool {
	return c == ChoiceOui || c == ChoiceNon
}

// Request types

type RegisterUserRequest struct {
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
}

type CastVoteRequest struct {
	Choice string `json:"choice"`
}

// Domain types

type User struct {
	ID        string    `json:"id" bson:"id"`
	Pseudo    string    `json:"pseudo" bson:"pseudo"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// UserSummary is the public projection of a User
type UserSummary struct {
	ID     string `json:"id"`
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Pseudo: u.Pseudo, Email: u.Email}
}

type Vote struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	Choice    string    `json:"choice" bson:"choice"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ChoiceCount is one row of the "count grouped by choice" aggregate
type ChoiceCount struct {
	Choice string `json:"choice" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// Result types

type ChoiceCounts struct {
	Oui int64 `json:"Oui"`
	Non int64 `json:"Non"`
}

type ChoicePercents struct {
	Oui float64 `json:"Oui"`
	Non float64 `json:"Non"`
}

type ResultSummary struct {
	Total   int64          `json:"total"`
	Counts  ChoiceCounts   `json:"counts"`
	Percent ChoicePercents `json:"percent"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
