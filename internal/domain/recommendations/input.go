package recommendations

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NumberText acepta tanto "3" como 3 en JSON; el formulario manda texto.
type NumberText string

func (n *NumberText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumberText(num.String())
	return nil
}

// ProfileInput es el perfil tal como llega del formulario o de la API.
type ProfileInput struct {
	Name             string        `json:"name"`
	Breed            string        `json:"breed"`
	Age              NumberText    `json:"age"`
	AgeUnit          AgeUnit       `json:"age_unit"`
	Weight           NumberText    `json:"weight"`
	Gender           Gender        `json:"gender"`
	Size             Size          `json:"size"`
	ActivityLevel    ActivityLevel `json:"activity_level"`
	HealthConditions string        `json:"health_conditions"`
	CurrentDiet      string        `json:"current_diet"`
	Allergies        string        `json:"allergies"`
}

// FieldErrors agrupa errores de parseo por campo ("age", "weight").
type FieldErrors map[string]error

// Parse convierte edad y peso con validación explícita. Un campo inválido
// no aborta el resto: el perfil se devuelve igual junto con los errores,
// y cada generador decide si puede correr.
func (in ProfileInput) Parse() (PetProfile, FieldErrors) {
	errs := FieldErrors{}

	p := PetProfile{
		Name:             strings.TrimSpace(in.Name),
		Breed:            strings.TrimSpace(in.Breed),
		AgeUnit:          AgeUnit(strings.ToLower(strings.TrimSpace(string(in.AgeUnit)))),
		Gender:           Gender(strings.ToLower(strings.TrimSpace(string(in.Gender)))),
		Size:             Size(strings.ToLower(strings.TrimSpace(string(in.Size)))),
		ActivityLevel:    ActivityLevel(strings.ToLower(strings.TrimSpace(string(in.ActivityLevel)))),
		HealthConditions: strings.TrimSpace(in.HealthConditions),
		CurrentDiet:      strings.TrimSpace(in.CurrentDiet),
		Allergies:        strings.TrimSpace(in.Allergies),
	}

	applyDefaults(&p)

	if v, err := ParseAge(string(in.Age)); err != nil {
		errs["age"] = err
	} else {
		p.AgeValue = v
	}
	if v, err := ParseWeight(string(in.Weight)); err != nil {
		errs["weight"] = err
	} else {
		p.WeightKg = v
	}

	if len(errs) == 0 {
		return p, nil
	}
	return p, errs
}

// applyDefaults completa los valores que el formulario trae preseleccionados.
// Un valor presente pero desconocido se deja tal cual y lo rechaza el generador.
func applyDefaults(p *PetProfile) {
	if p.AgeUnit == "" {
		p.AgeUnit = AgeUnitYears
	}
	if p.Gender == "" {
		p.Gender = GenderMale
	}
	if p.Size == "" {
		p.Size = SizeMedium
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivityModerate
	}
}
