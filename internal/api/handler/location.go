package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakhq/fielddex/internal/api/respond"
	"github.com/oakhq/fielddex/internal/apperr"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/validate"
)

// decodeBody unmarshals a request body, mapping malformed JSON to the flat
// 400 validation shape.
func decodeBody(r *http.Request, v any) *apperr.Error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("Invalid request body.")
	}
	return nil
}

// CreateLocation creates a location, enriching each pokemon name via the
// PokeAPI.
// @Summary Create location
// @Description Creates a location; every pokemon name is resolved against the PokeAPI before anything is written.
// @Tags locations
// @Accept json
// @Produce json
// @Param location body model.LocationInput true "Location to create"
// @Success 201 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /locations [post]
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var in model.LocationInput
	if err := decodeBody(r, &in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if err := validate.Struct(in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	loc, err := h.locations.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusCreated, loc, "Location created successfully.")
}

// GetLocations lists all locations.
// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {object} respond.SuccessEnvelope
// @Router /locations [get]
func (h *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locations.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, locations, "")
}

// GetLocation returns one location by id.
// @Summary Get location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 404 {object} respond.ErrorEnvelope
// @Router /locations/{id} [get]
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.locations.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, loc, "")
}

// UpdateLocation merge-patches a location.
// @Summary Update location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body model.LocationUpdate true "Fields to update"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 404 {object} respond.ErrorEnvelope
// @Router /locations/{id} [put]
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var in model.LocationUpdate
	if err := decodeBody(r, &in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if in.IsEmpty() {
		respond.Error(w, h.logger, validate.EmptyPatch())
		return
	}
	if err := validate.Struct(in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	loc, err := h.locations.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, loc, "Location updated successfully.")
}

// DeleteLocation removes a location.
// @Summary Delete location
// @Tags locations
// @Param id path string true "Location ID"
// @Success 204
// @Router /locations/{id} [delete]
func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.locations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.NoContent(w)
}
