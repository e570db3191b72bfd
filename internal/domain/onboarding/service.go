package onboarding

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"petid/internal/domain/recommendations"
)

var ErrUnknownStep = errors.New("unknown onboarding step")

type Service struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewService() *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los errores usan el nombre JSON del campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{validate: v, now: time.Now}
}

// ValidateStep revisa solo los campos del paso pedido.
func (s *Service) ValidateStep(_ context.Context, step Step, sub Submission) error {
	sub = normalize(sub)

	var target any
	switch step {
	case StepOwner:
		target = sub.Owner
	case StepPet:
		target = sub.Pet
	case StepDetails:
		target = sub.Details
	default:
		return ErrUnknownStep
	}

	return s.check(step, target)
}

// Complete valida los tres pasos en orden, aplica los valores por defecto
// y convierte edad y peso con los mismos parsers del motor.
func (s *Service) Complete(ctx context.Context, sub Submission) (Completion, error) {
	for _, step := range Steps {
		if err := s.ValidateStep(ctx, step, sub); err != nil {
			return Completion{}, err
		}
	}

	sub = normalize(sub)
	profile, fieldErrs := sub.profileInput().Parse()
	for _, f := range []string{"age", "weight"} {
		if err, ok := fieldErrs[f]; ok {
			return Completion{}, err
		}
	}

	return Completion{
		ID:          uuid.NewString(),
		Owner:       sub.Owner,
		Profile:     profile,
		CompletedAt: s.now().UTC(),
	}, nil
}

func (s *Service) check(step Step, target any) error {
	err := s.validate.Struct(target)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	se := &StepError{Step: step}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			se.Missing = append(se.Missing, fe.Field())
		} else {
			se.Invalid = append(se.Invalid, fe.Field())
		}
	}
	return se
}

func normalize(sub Submission) Submission {
	sub.Owner.Name = strings.TrimSpace(sub.Owner.Name)
	sub.Owner.Email = strings.ToLower(strings.TrimSpace(sub.Owner.Email))
	sub.Owner.Phone = strings.TrimSpace(sub.Owner.Phone)

	sub.Pet.Name = strings.TrimSpace(sub.Pet.Name)
	sub.Pet.Breed = strings.TrimSpace(sub.Pet.Breed)
	sub.Pet.Age = recommendations.NumberText(strings.TrimSpace(string(sub.Pet.Age)))
	sub.Pet.Weight = recommendations.NumberText(strings.TrimSpace(string(sub.Pet.Weight)))
	sub.Pet.AgeUnit = recommendations.AgeUnit(strings.ToLower(strings.TrimSpace(string(sub.Pet.AgeUnit))))
	sub.Pet.Gender = recommendations.Gender(strings.ToLower(strings.TrimSpace(string(sub.Pet.Gender))))
	sub.Pet.Size = recommendations.Size(strings.ToLower(strings.TrimSpace(string(sub.Pet.Size))))

	sub.Details.ActivityLevel = recommendations.ActivityLevel(strings.ToLower(strings.TrimSpace(string(sub.Details.ActivityLevel))))
	return sub
}
