package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/checkout/subscriptions", subscribeHandler(svc))
}

type subscribeResponse struct {
	Success bool `json:"success"`
	Result
}

// @Summary  Crear suscripción premium
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    input body     SubscribeInput true "cliente y forma de pago"
// @Success  201   {object} subscribeResponse
// @Failure  400   {object} map[string]string "validación o rechazo del gateway"
// @Failure  500   {object} map[string]string "gateway no configurado"
// @Router   /checkout/subscriptions [post]
func subscribeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in SubscribeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		res, err := svc.Subscribe(r.Context(), in)
		if err != nil {
			var (
				ie *InputError
				ue *UpstreamError
			)
			switch {
			case errors.As(err, &ie):
				writeError(w, http.StatusBadRequest, ie.Message)
			case errors.As(err, &ue):
				// igual que el checkout web: el rechazo del gateway es un 400 con mensaje
				writeError(w, http.StatusBadRequest, ue.Message)
			case errors.Is(err, ErrNotConfigured):
				writeError(w, http.StatusInternalServerError, "Configuração do sistema de pagamento não encontrada. Entre em contato com o suporte.")
			default:
				writeError(w, http.StatusInternalServerError, "Erro interno no servidor. Tente novamente em alguns instantes.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, subscribeResponse{Success: true, Result: res})
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
