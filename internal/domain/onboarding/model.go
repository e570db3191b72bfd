package onboarding

import (
	"fmt"
	"strings"
	"time"

	"petid/internal/domain/recommendations"
)

// Step del cuestionario: 1 tutor, 2 mascota, 3 detalles opcionales.
type Step int

const (
	StepOwner   Step = 1
	StepPet     Step = 2
	StepDetails Step = 3
)

var Steps = []Step{StepOwner, StepPet, StepDetails}

type Owner struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type Pet struct {
	Name    string                     `json:"name" validate:"required"`
	Breed   string                     `json:"breed" validate:"required"`
	Age     recommendations.NumberText `json:"age" validate:"required"`
	AgeUnit recommendations.AgeUnit    `json:"age_unit" validate:"omitempty,oneof=months years"`
	Weight  recommendations.NumberText `json:"weight" validate:"required"`
	Gender  recommendations.Gender     `json:"gender" validate:"omitempty,oneof=male female"`
	Size    recommendations.Size       `json:"size" validate:"omitempty,oneof=small medium large giant"`
}

type Details struct {
	ActivityLevel    recommendations.ActivityLevel `json:"activity_level" validate:"omitempty,oneof=low moderate high"`
	HealthConditions string                        `json:"health_conditions"`
	CurrentDiet      string                        `json:"current_diet"`
	Allergies        string                        `json:"allergies"`
}

// Submission es el formulario completo, tal como lo arma el cliente paso a paso.
type Submission struct {
	Owner   Owner   `json:"owner"`
	Pet     Pet     `json:"pet"`
	Details Details `json:"details"`
}

// Completion es el resultado del onboarding. No se persiste.
type Completion struct {
	ID          string                     `json:"id"`
	Owner       Owner                      `json:"owner"`
	Profile     recommendations.PetProfile `json:"-"`
	CompletedAt time.Time                  `json:"completed_at"`
}

// StepError lista los campos que faltan (o tienen formato inválido) en un paso.
type StepError struct {
	Step    Step     `json:"step"`
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

func (e *StepError) Error() string {
	parts := []string{}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("onboarding step %d: %s", e.Step, strings.Join(parts, "; "))
}

func (s Submission) profileInput() recommendations.ProfileInput {
	return recommendations.ProfileInput{
		Name:             s.Pet.Name,
		Breed:            s.Pet.Breed,
		Age:              s.Pet.Age,
		AgeUnit:          s.Pet.AgeUnit,
		Weight:           s.Pet.Weight,
		Gender:           s.Pet.Gender,
		Size:             s.Pet.Size,
		ActivityLevel:    s.Details.ActivityLevel,
		HealthConditions: s.Details.HealthConditions,
		CurrentDiet:      s.Details.CurrentDiet,
		Allergies:        s.Details.Allergies,
	}
}
