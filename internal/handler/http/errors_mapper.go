package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNameRequired:       http.StatusBadRequest,
	service.ErrValidEmailRequired: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
