package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// listUsers handles GET /users. It returns every user in store order.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUser handles GET /users/{userID}. A non-numeric ID is treated the same
// as a missing record: 404 with an empty body.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := userIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// createUser handles POST /users. On success it responds 201 with a
// Location header pointing at the created record.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// the store owns ID assignment; a client-supplied ID is ignored
	user.ID = 0

	createdUser, err := h.services.UserService.CreateUser(ctx, user)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", createdUser.ID))
	utils.WriteJSON(w, createdUser, http.StatusCreated)
}

// updateUser handles PUT /users/{userID}. The path ID wins over any ID in
// the body; IDs are immutable after creation.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := userIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}
	user.ID = id

	updatedUser, err := h.services.UserService.UpdateUser(ctx, user)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// deleteUser handles DELETE /users/{userID}. On success it responds 204
// with no body.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := userIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondError translates a service or store error into the HTTP response
// through the central [statusFromError] table.
//
// Not-found resolves to a bare 404 with an empty body. Validation failures
// carry the sentinel's text as the JSON error message. Anything unmapped is
// a handler-local unexpected failure and becomes a 500 response carrying
// the error text, unlike the recovery boundary's fixed generic body.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	switch status {
	case http.StatusNotFound:
		log.Debug().Err(err).Msg("user not found")
		w.WriteHeader(http.StatusNotFound)
	case http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error during request handling")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
	default:
		log.Err(err).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
	}
}

// userIDFromRequest parses the {userID} route parameter. The second return
// value is false when the parameter is absent or not a valid integer.
func userIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
