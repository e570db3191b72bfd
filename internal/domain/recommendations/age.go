package recommendations

import (
	"math"
	"strconv"
	"strings"
)

// LifeStage es la franja etaria usada por dieta y cuidados.
type LifeStage string

const (
	StageGrowth LifeStage = "growth" // < 12 meses
	StageAdult  LifeStage = "adult"  // 12..83 meses
	StageSenior LifeStage = "senior" // >= 84 meses
)

const (
	adultFromMonths  = 12
	seniorFromMonths = 84
)

func LifeStageFor(months float64) LifeStage {
	switch {
	case months < adultFromMonths:
		return StageGrowth
	case months < seniorFromMonths:
		return StageAdult
	default:
		return StageSenior
	}
}

// AgeInMonths normaliza (valor, unidad) a meses antes de cualquier franja.
func AgeInMonths(value float64, unit AgeUnit) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, invalid("age", value, ErrInvalidAge)
	}
	switch unit {
	case AgeUnitMonths:
		return value, nil
	case AgeUnitYears:
		return value * 12, nil
	default:
		return 0, invalid("age_unit", unit, ErrInvalidAge)
	}
}

// ParseAge convierte el texto del formulario en un número válido.
// No hay coerción silenciosa: texto no numérico o negativo es ErrInvalidAge.
func ParseAge(s string) (float64, error) {
	v, err := parseNumber(s)
	if err != nil || v < 0 {
		return 0, invalid("age", s, ErrInvalidAge)
	}
	return v, nil
}

// MaxWeightKg es el tope razonable para un perro; por encima es un error de carga.
const MaxWeightKg = 200

// ParseWeight exige peso en (0, MaxWeightKg].
func ParseWeight(s string) (float64, error) {
	v, err := parseNumber(s)
	if err != nil || v <= 0 || v > MaxWeightKg {
		return 0, invalid("weight", s, ErrInvalidWeight)
	}
	return v, nil
}

func parseNumber(s string) (float64, error) {
	// el formulario acepta coma decimal ("12,5")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func (p PetProfile) ageInMonths() (float64, error) {
	return AgeInMonths(p.AgeValue, p.AgeUnit)
}
