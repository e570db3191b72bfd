package recommendations

import "fmt"

var jointCareTip = CareTip{
	Title:       "Articulações",
	Description: "Evitar escadas e pisos escorregadios",
	Icon:        IconAlertCircle,
}

func careTipsForStage(stage LifeStage, activity ActivityLevel) []CareTip {
	switch stage {
	case StageGrowth:
		return []CareTip{
			{Title: "Socialização", Description: "Exponha a diferentes ambientes, pessoas e outros animais", Icon: IconHeart},
			{Title: "Treinamento", Description: "Comece comandos básicos: sentar, ficar, vir", Icon: IconSparkles},
			{Title: "Vermifugação", Description: "A cada 3 meses até 1 ano de idade", Icon: IconShield},
		}
	case StageAdult:
		return []CareTip{
			{Title: "Exercícios", Description: fmt.Sprintf("%s de atividade diária", exerciseDuration(activity)), Icon: IconActivity},
			{Title: "Higiene Dental", Description: "Escovação 2-3x por semana, petiscos dentais", Icon: IconSparkles},
			{Title: "Banho", Description: "A cada 15-30 dias com produtos específicos", Icon: IconDroplets},
		}
	default:
		return []CareTip{
			{Title: "Check-ups", Description: "Consultas veterinárias a cada 6 meses", Icon: IconHeart},
			{Title: "Conforto", Description: "Cama ortopédica, ambiente aquecido", Icon: IconSparkles},
			{Title: "Suplementação", Description: "Considerar condroitina e glucosamina", Icon: IconShield},
		}
	}
}

func exerciseDuration(a ActivityLevel) string {
	if a == ActivityHigh {
		return "60-90 min"
	}
	return "30-45 min"
}

// GenerateCareRecommendations: tres tips por franja etaria y, para porte
// grande o gigante, el tip de articulaciones al final.
func GenerateCareRecommendations(p PetProfile) ([]CareTip, error) {
	months, err := p.ageInMonths()
	if err != nil {
		return nil, err
	}
	if _, ok := portionMultiplier[p.Size]; !ok {
		return nil, invalid("size", p.Size, ErrUnknownSize)
	}
	if err := validateActivity(p.ActivityLevel); err != nil {
		return nil, err
	}

	out := careTipsForStage(LifeStageFor(months), p.ActivityLevel)
	if p.Size == SizeLarge || p.Size == SizeGiant {
		out = append(out, jointCareTip)
	}
	return out, nil
}
