package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/internal/validators"
)

// errorStatusMap assigns each well-known error its stable outward HTTP
// status, so a caller can distinguish "nothing matched" (404) from "bad
// input" (400) from "conflict" (409).
var errorStatusMap = map[error]int{
	store.ErrItemNotFound: http.StatusNotFound,
	store.ErrUserNotFound: http.StatusNotFound,

	validators.ErrInvalidName:        http.StatusBadRequest,
	validators.ErrDescriptionTooLong: http.StatusBadRequest,
	validators.ErrInvalidPrice:       http.StatusBadRequest,
	validators.ErrInvalidQuantity:    http.StatusBadRequest,
	validators.ErrInvalidUsername:    http.StatusBadRequest,
	validators.ErrInvalidEmail:       http.StatusBadRequest,
	validators.ErrInvalidPassword:    http.StatusBadRequest,
	validators.ErrUnsupportedType:    http.StatusBadRequest,
	validators.ErrUnknownField:       http.StatusBadRequest,

	validators.ErrDuplicateUsername: http.StatusConflict,
	validators.ErrDuplicateEmail:    http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the mapped status for err. Known errors carry their
// message to the caller (it names the offending identifier or field);
// everything unknown is masked as a plain 500.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
