package recommendations

import (
	"fmt"
	"math"
)

var dietByStage = map[LifeStage][]string{
	StageGrowth: {
		"Ração específica para filhotes (puppy) com alto teor proteico",
		"Alimentar 3-4 vezes ao dia em porções menores",
		"Evitar alimentos humanos e guloseimas em excesso",
	},
	StageAdult: {
		"Ração premium para adultos adequada ao porte",
		"Alimentar 2 vezes ao dia em horários regulares",
		"Manter água fresca sempre disponível",
	},
	StageSenior: {
		"Ração sênior com nutrientes específicos para idade avançada",
		"Considerar suplementos para articulações",
		"Monitorar peso regularmente",
	},
}

// gramos por kg de peso por día
var portionMultiplier = map[Size]float64{
	SizeSmall:  40,
	SizeMedium: 35,
	SizeLarge:  30,
	SizeGiant:  25,
}

var dietByActivity = map[ActivityLevel]string{
	ActivityHigh: "Considerar ração com maior teor energético devido à alta atividade",
	ActivityLow:  "Ração light ou controle de peso para evitar obesidade",
}

// DailyPortionGrams = round(peso * multiplicador del porte).
// El peso debe estar en (0, MaxWeightKg].
func DailyPortionGrams(weightKg float64, size Size) (int, error) {
	if math.IsNaN(weightKg) || weightKg <= 0 || weightKg > MaxWeightKg {
		return 0, invalid("weight", weightKg, ErrInvalidWeight)
	}
	m, ok := portionMultiplier[size]
	if !ok {
		return 0, invalid("size", size, ErrUnknownSize)
	}
	return int(math.Round(weightKg * m)), nil
}

// GenerateDietRecommendations devuelve: franja etaria, porción diaria y,
// si corresponde, el ajuste por actividad. En ese orden.
func GenerateDietRecommendations(p PetProfile) (DietRecommendation, error) {
	months, err := p.ageInMonths()
	if err != nil {
		return nil, err
	}
	grams, err := DailyPortionGrams(p.WeightKg, p.Size)
	if err != nil {
		return nil, err
	}
	if err := validateActivity(p.ActivityLevel); err != nil {
		return nil, err
	}

	stage := dietByStage[LifeStageFor(months)]
	out := make(DietRecommendation, 0, len(stage)+2)
	out = append(out, stage...)
	out = append(out, fmt.Sprintf("Porção diária: %dg dividida em 2 refeições", grams))
	if note, ok := dietByActivity[p.ActivityLevel]; ok {
		out = append(out, note)
	}
	return out, nil
}

func validateActivity(a ActivityLevel) error {
	switch a {
	case ActivityLow, ActivityModerate, ActivityHigh:
		return nil
	default:
		return invalid("activity_level", a, ErrUnknownActivityLevel)
	}
}
