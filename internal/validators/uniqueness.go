// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"

	"github.com/MKhiriev/go-sample-api/models"
)

// CheckUnique reports whether candidate collides with any existing user on a
// designated unique field under case-insensitive comparison.
//
// Fields are checked in a fixed order, username before email, across all
// existing records: if the candidate's username collides with any record the
// result is [ErrDuplicateUsername], even when its email also collides with
// some other record. On success it returns nil.
//
// The caller is responsible for atomicity: the user store invokes CheckUnique
// inside the same critical section as the subsequent append, so two
// concurrent creates with the same username cannot both pass the check.
func CheckUnique(candidate models.UserPayload, existing []models.User) error {
	for _, user := range existing {
		if strings.EqualFold(user.Username, candidate.Username) {
			return ErrDuplicateUsername
		}
	}

	for _, user := range existing {
		if strings.EqualFold(user.Email, candidate.Email) {
			return ErrDuplicateEmail
		}
	}

	return nil
}
