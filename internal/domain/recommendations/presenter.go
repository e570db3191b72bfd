package recommendations

import (
	"context"
	"errors"

	"petid/internal/domain/breeds"
	"petid/internal/domain/reveal"
	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"
)

// BreedLookup resuelve el texto de raza contra el catálogo de referencia.
type BreedLookup interface {
	Lookup(text string) (breeds.Breed, bool)
}

var premiumFeatures = []string{
	"Lembretes automáticos de horários de alimentação",
	"Controle de porções e peso",
	"Histórico completo de alimentação",
	"Lembretes automáticos de vacinas",
	"Registro de vacinas aplicadas e histórico completo de imunização",
}

type SectionError struct {
	Section reveal.Section `json:"section"`
	Field   string         `json:"field,omitempty"`
	Message string         `json:"message"`
}

type Notice struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Hint  string `json:"hint,omitempty"`
}

type BreedInsights struct {
	BreedID string                `json:"breed_id"`
	Name    string                `json:"name"`
	Content breeds.PremiumContent `json:"content"`
}

type PetSummary struct {
	Name          string        `json:"name"`
	Breed         string        `json:"breed"`
	AgeValue      float64       `json:"age"`
	AgeUnit       AgeUnit       `json:"age_unit"`
	WeightKg      float64       `json:"weight_kg"`
	Size          Size          `json:"size"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// View es lo que ve el tutor: recomendaciones completas filtradas por la política.
type View struct {
	Plan entitlements.Plan `json:"plan"`
	Pet  PetSummary        `json:"pet"`

	Diet     DietRecommendation     `json:"diet,omitempty"`
	Vaccines []VaccineScheduleEntry `json:"vaccines,omitempty"`
	Care     []CareTip              `json:"care,omitempty"`

	AllergyWarning  *Notice        `json:"allergy_warning,omitempty"`
	HealthNotice    *Notice        `json:"health_notice,omitempty"`
	BreedInsights   *BreedInsights `json:"breed_insights,omitempty"`
	PremiumFeatures []string       `json:"premium_features,omitempty"`

	Locked []reveal.Section `json:"locked"`
	Errors []SectionError   `json:"errors,omitempty"`
}

func (v View) HasErrors() bool { return len(v.Errors) > 0 }

// Presenter corre el motor completo y recién después aplica la decisión de qué mostrar.
type Presenter struct {
	breeds BreedLookup
	gate   *reveal.Gate
}

func NewPresenter(breeds BreedLookup, gate *reveal.Gate) *Presenter {
	return &Presenter{breeds: breeds, gate: gate}
}

func (p *Presenter) Present(ctx context.Context, claims auth.Claims, authenticated bool, profile PetProfile, fieldErrs FieldErrors) View {
	recs := Generate(profile, fieldErrs)
	plan, decision := p.gate.Decide(ctx, claims, authenticated)

	v := View{
		Plan: plan,
		Pet: PetSummary{
			Name:          profile.Name,
			Breed:         profile.Breed,
			AgeValue:      profile.AgeValue,
			AgeUnit:       profile.AgeUnit,
			WeightKg:      profile.WeightKg,
			Size:          profile.Size,
			ActivityLevel: profile.ActivityLevel,
		},
		Locked: decision.Locked(),
	}

	if recs.DietErr != nil {
		v.Errors = append(v.Errors, sectionError(reveal.SectionDiet, recs.DietErr))
	} else if decision.Reveals(reveal.SectionDiet) {
		v.Diet = recs.Diet
	}
	if recs.VaccinesErr != nil {
		v.Errors = append(v.Errors, sectionError(reveal.SectionVaccines, recs.VaccinesErr))
	} else if decision.Reveals(reveal.SectionVaccines) {
		v.Vaccines = recs.Vaccines
	}
	if recs.CareErr != nil {
		v.Errors = append(v.Errors, sectionError(reveal.SectionCare, recs.CareErr))
	} else if decision.Reveals(reveal.SectionCare) {
		v.Care = recs.Care
	}

	if profile.Allergies != "" && decision.Reveals(reveal.SectionDiet) {
		v.AllergyWarning = &Notice{Title: "Atenção: Alergias/Restrições", Text: profile.Allergies}
	}
	if profile.HealthConditions != "" && decision.Reveals(reveal.SectionCare) {
		v.HealthNotice = &Notice{
			Title: "Condições de Saúde Registradas",
			Text:  profile.HealthConditions,
			Hint:  "Consulte sempre seu veterinário para cuidados específicos",
		}
	}

	if p.breeds != nil && decision.Reveals(reveal.SectionBreedInsights) {
		if b, ok := p.breeds.Lookup(profile.Breed); ok {
			v.BreedInsights = &BreedInsights{BreedID: b.ID, Name: b.Name, Content: b.Premium}
		}
	}
	if decision.Reveals(reveal.SectionPremiumFeatures) {
		v.PremiumFeatures = append([]string(nil), premiumFeatures...)
	}

	return v
}

func sectionError(s reveal.Section, err error) SectionError {
	se := SectionError{Section: s, Message: err.Error()}
	var ve *ValidationError
	if errors.As(err, &ve) {
		se.Field = ve.Field
		se.Message = ve.Err.Error()
	}
	return se
}
