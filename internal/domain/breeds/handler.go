package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"petid/internal/domain/reveal"
	"petid/internal/middleware"
	"petid/internal/ports/entitlements"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, catalog *Catalog, gate *reveal.Gate) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(catalog))
		br.Get("/{breedID}", getBreedHandler(catalog, gate))
	})
}

type breedSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	NameEn   string   `json:"name_en"`
	Category Category `json:"category"`
	Origin   string   `json:"origin"`
	WeightKg Range    `json:"weight_kg"`
}

type breedResponse struct {
	breedSummary

	HeightCm            Range       `json:"height_cm"`
	LifeExpectancyYears Range       `json:"life_expectancy_years"`
	Temperament         Temperament `json:"temperament"`

	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	HealthConcerns  []string `json:"health_concerns"`
	GroomingNeeds   string   `json:"grooming_needs"`
	ExerciseNeeds   string   `json:"exercise_needs"`
	FunFact         string   `json:"fun_fact"`

	Plan    entitlements.Plan `json:"plan"`
	Premium *PremiumContent   `json:"premium,omitempty"`
	Locked  bool              `json:"premium_locked"`
}

// listBreedsHandler: ?category=large y/o ?q=retriever
//
// @Summary  Listar razas
// @Tags     breeds
// @Produce  json
// @Param    category query    string false "toy, small, medium, large, giant"
// @Param    q        query    string false "búsqueda por nombre"
// @Success  200      {array}  breedSummary
// @Failure  400      {object} map[string]string
// @Router   /breeds [get]
func listBreedsHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := catalog.All()

		if cat := strings.TrimSpace(r.URL.Query().Get("category")); cat != "" {
			filtered, err := catalog.ByCategory(Category(strings.ToLower(cat)))
			if err != nil {
				writeError(w, http.StatusBadRequest, "category must be one of toy, small, medium, large, giant")
				return
			}
			items = filtered
		}

		if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
			matches := map[string]struct{}{}
			for _, b := range catalog.SearchByName(q) {
				matches[b.ID] = struct{}{}
			}
			kept := make([]Breed, 0, len(items))
			for _, b := range items {
				if _, ok := matches[b.ID]; ok {
					kept = append(kept, b)
				}
			}
			items = kept
		}

		out := make([]breedSummary, 0, len(items))
		for _, b := range items {
			out = append(out, toSummary(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary  Detalle de una raza
// @Tags     breeds
// @Produce  json
// @Param    breedID path     string true "id de la raza"
// @Success  200     {object} breedResponse
// @Failure  404     {object} map[string]string
// @Router   /breeds/{breedID} [get]
func getBreedHandler(catalog *Catalog, gate *reveal.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := catalog.ByID(chi.URLParam(r, "breedID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "breed not found")
			return
		}

		claims, ok := middleware.GetClaims(r.Context())
		plan, decision := gate.Decide(r.Context(), claims, ok)

		resp := breedResponse{
			breedSummary:        toSummary(b),
			HeightCm:            b.HeightCm,
			LifeExpectancyYears: b.LifeExpectancyYears,
			Temperament:         b.Temperament,
			Description:         b.Description,
			Characteristics:     b.Characteristics,
			HealthConcerns:      b.HealthConcerns,
			GroomingNeeds:       b.GroomingNeeds,
			ExerciseNeeds:       b.ExerciseNeeds,
			FunFact:             b.FunFact,
			Plan:                plan,
			Locked:              true,
		}
		if decision.Reveals(reveal.SectionBreedInsights) {
			premium := b.Premium
			resp.Premium = &premium
			resp.Locked = false
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func toSummary(b Breed) breedSummary {
	return breedSummary{
		ID:       b.ID,
		Name:     b.Name,
		NameEn:   b.NameEn,
		Category: b.Category,
		Origin:   b.Origin,
		WeightKg: b.WeightKg,
	}
}

// writeJSON está duplicado en cada módulo a propósito (mismo criterio que el resto de handlers).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
