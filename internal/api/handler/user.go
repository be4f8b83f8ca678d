package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakhq/fielddex/internal/api/respond"
	"github.com/oakhq/fielddex/internal/auth"
)

// userProfile is the /users/{uid} payload.
type userProfile struct {
	UserID string `json:"userId"`
	Roles  string `json:"roles"`
}

// GetUserProfile returns the profile for a subject. Callers reach it either
// through a role grant or through the same-user bypass.
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param uid path string true "Subject ID"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 401 {object} respond.ErrorEnvelope
// @Failure 403 {object} respond.ErrorEnvelope
// @Router /users/{uid} [get]
func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	identity, _ := auth.IdentityFrom(r.Context())

	respond.Success(w, http.StatusOK, userProfile{
		UserID: uid,
		Roles:  identity.Role,
	}, fmt.Sprintf("User profile for user ID: %s", uid))
}
