package breeds

// Category es el porte declarado por la raza. Incluye "toy",
// que el perfil de la mascota no distingue de "small".
// @Enum toy, small, medium, large, giant
type Category string

const (
	CategoryToy    Category = "toy"
	CategorySmall  Category = "small"
	CategoryMedium Category = "medium"
	CategoryLarge  Category = "large"
	CategoryGiant  Category = "giant"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryToy, CategorySmall, CategoryMedium, CategoryLarge, CategoryGiant:
		return true
	default:
		return false
	}
}

type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Temperament en escala 1-5.
type Temperament struct {
	Friendly      int `yaml:"friendly" json:"friendly"`
	EnergyLevel   int `yaml:"energy_level" json:"energy_level"`
	Trainability  int `yaml:"trainability" json:"trainability"`
	GoodWithKids  int `yaml:"good_with_kids" json:"good_with_kids"`
	GoodWithPets  int `yaml:"good_with_pets" json:"good_with_pets"`
	BarkingLevel  int `yaml:"barking_level" json:"barking_level"`
	SheddingLevel int `yaml:"shedding_level" json:"shedding_level"`
}

// PremiumContent solo se muestra si la política lo habilita.
type PremiumContent struct {
	Diet               []string `yaml:"diet" json:"diet"`
	TrainingTips       []string `yaml:"training_tips" json:"training_tips"`
	CommonHealthIssues []string `yaml:"common_health_issues" json:"common_health_issues"`
	VaccineSchedule    []string `yaml:"vaccine_schedule" json:"vaccine_schedule"`
}

type Breed struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	NameEn   string   `yaml:"name_en" json:"name_en"`
	Category Category `yaml:"category" json:"category"`
	Origin   string   `yaml:"origin" json:"origin"`

	WeightKg            Range `yaml:"weight_kg" json:"weight_kg"`
	HeightCm            Range `yaml:"height_cm" json:"height_cm"`
	LifeExpectancyYears Range `yaml:"life_expectancy_years" json:"life_expectancy_years"`

	Temperament Temperament `yaml:"temperament" json:"temperament"`

	Description     string   `yaml:"description" json:"description"`
	Characteristics []string `yaml:"characteristics" json:"characteristics"`
	HealthConcerns  []string `yaml:"health_concerns" json:"health_concerns"`
	GroomingNeeds   string   `yaml:"grooming_needs" json:"grooming_needs"`
	ExerciseNeeds   string   `yaml:"exercise_needs" json:"exercise_needs"`
	FunFact         string   `yaml:"fun_fact" json:"fun_fact"`

	Premium PremiumContent `yaml:"premium" json:"premium"`
}
