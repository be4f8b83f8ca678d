package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/oakhq/fielddex/internal/api/respond"
	"github.com/oakhq/fielddex/internal/apperr"
)

// setClaimsRequest links a trainer record to an identity-provider subject
// and assigns that subject's role claims.
type setClaimsRequest struct {
	ID     string            `json:"id"`
	UID    string            `json:"uid"`
	Claims map[string]string `json:"claims"`
}

// SetCustomClaims stamps a subject uid onto a trainer and persists the
// subject's role claim. The new role takes effect on the subject's next
// request without re-issuing tokens.
// @Summary Set custom claims
// @Description Links a trainer to an auth subject and assigns role claims.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body setClaimsRequest true "Trainer id, subject uid, and claims"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 403 {object} respond.ErrorEnvelope
// @Router /admin/setCustomClaims [post]
func (h *Handler) SetCustomClaims(w http.ResponseWriter, r *http.Request) {
	var req setClaimsRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	var missing []string
	if strings.TrimSpace(req.ID) == "" {
		missing = append(missing, "id is required")
	}
	if strings.TrimSpace(req.UID) == "" {
		missing = append(missing, "uid is required")
	}
	if len(missing) > 0 {
		respond.Error(w, h.logger, apperr.Validation(strings.Join(missing, "; ")))
		return
	}

	if _, err := h.trainers.LinkUID(r.Context(), req.ID, req.UID); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if err := h.provider.SetRoleClaim(r.Context(), req.UID, req.Claims); err != nil {
		h.logger.Error("set role claim failed", "uid", req.UID, "error", err)
		respond.Error(w, h.logger, apperr.Service("Failed to set custom claims."))
		return
	}

	respond.Success(w, http.StatusOK, nil, fmt.Sprintf("Custom claims set for user: %s", req.UID))
}
