// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/bayroumeter/middleware"
	"github.com/danielhkuo/bayroumeter/voting"
)

// writeError maps a registry error to its status code. conflictStatus is
// per endpoint: a taken email is 403, a second vote is 409. Reads cannot
// conflict and pass 500.
func writeError(w http.ResponseWriter, err error, conflictStatus int) {
	status := http.StatusInternalServerError
	switch voting.KindOf(err) {
	case voting.KindValidation:
		status = http.StatusBadRequest
	case voting.KindConflict:
		status = conflictStatus
	case voting.KindNotFound:
		status = http.StatusNotFound
	}
	middleware.ErrorResponse(w, status, voting.MessageOf(err))
}
