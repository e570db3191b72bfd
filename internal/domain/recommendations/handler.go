package recommendations

import (
	"encoding/json"
	"net/http"

	"petid/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, p *Presenter) {
	r.Post("/recommendations", recommendHandler(p))
}

// recommendHandler corre el motor sobre el perfil recibido.
// 200 con la vista, 422 si alguna sección no se pudo generar (las otras vienen igual).
//
// @Summary  Generar recomendaciones
// @Tags     recommendations
// @Accept   json
// @Produce  json
// @Param    profile body     ProfileInput true "perfil de la mascota"
// @Success  200     {object} View
// @Failure  400     {object} map[string]string
// @Failure  422     {object} View
// @Router   /recommendations [post]
func recommendHandler(p *Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in ProfileInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		profile, fieldErrs := in.Parse()
		claims, ok := middleware.GetClaims(r.Context())

		view := p.Present(r.Context(), claims, ok, profile, fieldErrs)
		if view.HasErrors() {
			writeJSON(w, http.StatusUnprocessableEntity, view)
			return
		}
		writeJSON(w, http.StatusOK, view)
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
