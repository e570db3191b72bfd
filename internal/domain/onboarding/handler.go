package onboarding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"petid/internal/domain/recommendations"
	"petid/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, presenter *recommendations.Presenter) {
	r.Route("/onboarding", func(or chi.Router) {
		or.Post("/steps/{step}/validate", validateStepHandler(svc))
		or.Post("/complete", completeHandler(svc, presenter))
	})
}

type completeResponse struct {
	ID              string               `json:"id"`
	Owner           Owner                `json:"owner"`
	Recommendations recommendations.View `json:"recommendations"`
	CompletedAt     time.Time            `json:"completed_at"`
}

// @Summary  Validar un paso del cuestionario
// @Tags     onboarding
// @Accept   json
// @Produce  json
// @Param    step       path     int        true "paso (1-3)"
// @Param    submission body     Submission true "formulario"
// @Success  200        {object} map[string]any
// @Failure  404        {object} map[string]string
// @Failure  422        {object} StepError
// @Router   /onboarding/steps/{step}/validate [post]
func validateStepHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "step"))
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown step")
			return
		}

		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		err = svc.ValidateStep(r.Context(), Step(n), sub)
		var se *StepError
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]any{"step": n, "valid": true})
		case errors.Is(err, ErrUnknownStep):
			writeError(w, http.StatusNotFound, "unknown step")
		case errors.As(err, &se):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"valid": false, "error": se})
		default:
			writeError(w, http.StatusInternalServerError, "could not validate step")
		}
	}
}

// @Summary  Completar el onboarding
// @Tags     onboarding
// @Accept   json
// @Produce  json
// @Param    submission body     Submission true "formulario completo"
// @Success  201        {object} completeResponse
// @Failure  400        {object} map[string]string
// @Failure  422        {object} map[string]any
// @Router   /onboarding/complete [post]
func completeHandler(svc *Service, presenter *recommendations.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		c, err := svc.Complete(r.Context(), sub)
		if err != nil {
			var se *StepError
			if errors.As(err, &se) {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": se})
				return
			}
			if field, ok := recommendations.FieldOf(err); ok {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
					"error": map[string]string{"field": field, "message": errors.Unwrap(err).Error()},
				})
				return
			}
			writeError(w, http.StatusInternalServerError, "could not complete onboarding")
			return
		}

		claims, ok := middleware.GetClaims(r.Context())
		view := presenter.Present(r.Context(), claims, ok, c.Profile, nil)

		writeJSON(w, http.StatusCreated, completeResponse{
			ID:              c.ID,
			Owner:           c.Owner,
			Recommendations: view,
			CompletedAt:     c.CompletedAt,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
