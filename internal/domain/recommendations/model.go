package recommendations

// AgeUnit define la unidad en la que el tutor informa la edad.
// @Enum months, years
type AgeUnit string

const (
	AgeUnitMonths AgeUnit = "months"
	AgeUnitYears  AgeUnit = "years"
)

// Gender define el sexo de la mascota.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Size define el porte de la mascota.
// @Enum small, medium, large, giant
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeGiant  Size = "giant"
)

// ActivityLevel define el nivel de actividad diaria.
// @Enum low, moderate, high
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// PetProfile es la entrada del motor. Se trata como inmutable:
// los generadores solo leen sus campos.
type PetProfile struct {
	Name  string
	Breed string

	AgeValue float64
	AgeUnit  AgeUnit

	WeightKg float64
	Gender   Gender
	Size     Size

	ActivityLevel ActivityLevel

	HealthConditions string
	CurrentDiet      string
	Allergies        string
}

// DietRecommendation es la lista ordenada de indicaciones de alimentación.
type DietRecommendation []string

// UrgencyStatus marca la prioridad relativa de una vacuna.
type UrgencyStatus string

const (
	StatusUrgent   UrgencyStatus = "urgente"
	StatusNext     UrgencyStatus = "próximo"
	StatusFuture   UrgencyStatus = "futuro"
	StatusVerify   UrgencyStatus = "verificar"
	StatusMaintain UrgencyStatus = "manter"
	StatusConsult  UrgencyStatus = "consultar"
)

// Priority: urgente > próximo > verificar > manter/consultar/futuro.
func (s UrgencyStatus) Priority() int {
	switch s {
	case StatusUrgent:
		return 3
	case StatusNext:
		return 2
	case StatusVerify:
		return 1
	default:
		return 0
	}
}

type VaccineScheduleEntry struct {
	Vaccine string        `json:"vaccine"`
	Timing  string        `json:"timing"`
	Status  UrgencyStatus `json:"status"`
}

// Icon es un tag simbólico; la capa de presentación decide cómo dibujarlo.
type Icon string

const (
	IconHeart       Icon = "heart"
	IconSparkles    Icon = "sparkles"
	IconShield      Icon = "shield"
	IconActivity    Icon = "activity"
	IconDroplets    Icon = "droplets"
	IconAlertCircle Icon = "alert-circle"
)

type CareTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
}
