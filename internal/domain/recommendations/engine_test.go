package recommendations

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adultLarge() PetProfile {
	return PetProfile{
		Name:          "Thor",
		Breed:         "Labrador Retriever",
		AgeValue:      3,
		AgeUnit:       AgeUnitYears,
		WeightKg:      30,
		Gender:        GenderMale,
		Size:          SizeLarge,
		ActivityLevel: ActivityModerate,
	}
}

func TestDiet_AdultLarge_PortionAndBand(t *testing.T) {
	got, err := GenerateDietRecommendations(adultLarge())
	require.NoError(t, err)

	want := DietRecommendation{
		"Ração premium para adultos adequada ao porte",
		"Alimentar 2 vezes ao dia em horários regulares",
		"Manter água fresca sempre disponível",
		"Porção diária: 900g dividida em 2 refeições",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diet mismatch (-want +got):\n%s", diff)
	}
}

func TestCare_AdultLarge_IncludesJointTipLast(t *testing.T) {
	got, err := GenerateCareRecommendations(adultLarge())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Exercícios", got[0].Title)
	assert.Equal(t, "30-45 min de atividade diária", got[0].Description)
	assert.Equal(t, jointCareTip, got[3])
}

func TestDiet_GiantPortion(t *testing.T) {
	p := adultLarge()
	p.Size = SizeGiant
	p.WeightKg = 50

	got, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Contains(t, got, "Porção diária: 1250g dividida em 2 refeições")
}

func TestDailyPortionGrams_Multipliers(t *testing.T) {
	cases := []struct {
		size   Size
		weight float64
		want   int
	}{
		{SizeSmall, 5, 200},
		{SizeMedium, 12, 420},
		{SizeLarge, 30, 900},
		{SizeGiant, 50, 1250},
		{SizeSmall, 2.5, 100},
		{SizeLarge, 0.25, 8}, // 7.5 redondea hacia arriba
	}
	for _, tc := range cases {
		got, err := DailyPortionGrams(tc.weight, tc.size)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "size=%s weight=%v", tc.size, tc.weight)
	}
}

func TestDailyPortionGrams_StrictlyIncreasingWithWeight(t *testing.T) {
	for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge, SizeGiant} {
		prev := -1
		for w := 0.5; w <= 100; w += 0.5 {
			g, err := DailyPortionGrams(w, size)
			require.NoError(t, err)
			require.Greaterf(t, g, prev, "size=%s weight=%v", size, w)
			prev = g
		}
	}
}

func TestDiet_ActivityAdjustment(t *testing.T) {
	p := adultLarge()

	p.ActivityLevel = ActivityHigh
	high, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Equal(t, "Considerar ração com maior teor energético devido à alta atividade", high[len(high)-1])

	p.ActivityLevel = ActivityLow
	low, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Equal(t, "Ração light ou controle de peso para evitar obesidade", low[len(low)-1])

	p.ActivityLevel = ActivityModerate
	moderate, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Len(t, moderate, 4)
}

func TestLifeStage_Boundaries(t *testing.T) {
	cases := map[float64]LifeStage{
		0:    StageGrowth,
		11:   StageGrowth,
		11.9: StageGrowth,
		12:   StageAdult,
		83:   StageAdult,
		84:   StageSenior,
		200:  StageSenior,
	}
	for months, want := range cases {
		assert.Equalf(t, want, LifeStageFor(months), "months=%v", months)
	}
}

func TestDiet_ElevenVsTwelveMonths(t *testing.T) {
	p := adultLarge()
	p.AgeUnit = AgeUnitMonths

	p.AgeValue = 11
	growth, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Equal(t, dietByStage[StageGrowth][0], growth[0])

	p.AgeValue = 12
	adult, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Equal(t, dietByStage[StageAdult][0], adult[0])
}

func TestCare_SeniorAndGrowthBands(t *testing.T) {
	p := adultLarge()
	p.Size = SizeSmall

	p.AgeValue = 7
	senior, err := GenerateCareRecommendations(p)
	require.NoError(t, err)
	require.Len(t, senior, 3)
	assert.Equal(t, "Check-ups", senior[0].Title)

	p.AgeUnit = AgeUnitMonths
	p.AgeValue = 6
	growth, err := GenerateCareRecommendations(p)
	require.NoError(t, err)
	require.Len(t, growth, 3)
	assert.Equal(t, []string{"Socialização", "Treinamento", "Vermifugação"}, titles(growth))
}

func TestCare_HighActivityExercise(t *testing.T) {
	p := adultLarge()
	p.ActivityLevel = ActivityHigh

	got, err := GenerateCareRecommendations(p)
	require.NoError(t, err)
	assert.Equal(t, "60-90 min de atividade diária", got[0].Description)
}

func TestVaccines_Bands(t *testing.T) {
	p := adultLarge()
	p.AgeUnit = AgeUnitMonths

	p.AgeValue = 2
	puppy, err := GenerateVaccineSchedule(p)
	require.NoError(t, err)
	require.Len(t, puppy, 4)
	assert.Equal(t, []UrgencyStatus{StatusUrgent, StatusNext, StatusFuture, StatusFuture}, statuses(puppy))

	p.AgeValue = 4
	booster, err := GenerateVaccineSchedule(p)
	require.NoError(t, err)
	assert.Equal(t, []UrgencyStatus{StatusVerify, StatusVerify, StatusConsult}, statuses(booster))

	p.AgeValue = 12
	annual, err := GenerateVaccineSchedule(p)
	require.NoError(t, err)
	assert.Equal(t, []UrgencyStatus{StatusMaintain, StatusMaintain, StatusConsult, StatusConsult}, statuses(annual))
}

func TestVaccineBand_Boundaries(t *testing.T) {
	assert.Equal(t, BandPrimary, VaccineBandFor(3.99))
	assert.Equal(t, BandBooster, VaccineBandFor(4))
	assert.Equal(t, BandBooster, VaccineBandFor(11.99))
	assert.Equal(t, BandAnnual, VaccineBandFor(12))
}

func TestVaccineScheduleForAge_ReturnsCopy(t *testing.T) {
	got := VaccineScheduleForAge(1)
	got[0].Status = StatusMaintain

	again := VaccineScheduleForAge(1)
	assert.Equal(t, StatusUrgent, again[0].Status)
}

func TestGenerators_Deterministic(t *testing.T) {
	profiles := []PetProfile{adultLarge()}
	for _, months := range []float64{0, 3, 4, 11, 12, 83, 84, 150} {
		for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge, SizeGiant} {
			p := adultLarge()
			p.AgeUnit = AgeUnitMonths
			p.AgeValue = months
			p.Size = size
			profiles = append(profiles, p)
		}
	}

	for _, p := range profiles {
		d1, err := GenerateDietRecommendations(p)
		require.NoError(t, err)
		d2, _ := GenerateDietRecommendations(p)
		require.Empty(t, cmp.Diff(d1, d2))
		require.NotEmpty(t, d1)

		v1, err := GenerateVaccineSchedule(p)
		require.NoError(t, err)
		v2, _ := GenerateVaccineSchedule(p)
		require.Empty(t, cmp.Diff(v1, v2))
		require.NotEmpty(t, v1)

		c1, err := GenerateCareRecommendations(p)
		require.NoError(t, err)
		c2, _ := GenerateCareRecommendations(p)
		require.Empty(t, cmp.Diff(c1, c2))
		require.NotEmpty(t, c1)
	}
}

func TestGenerators_InvalidInputs(t *testing.T) {
	zeroWeight := adultLarge()
	zeroWeight.WeightKg = 0
	_, err := GenerateDietRecommendations(zeroWeight)
	require.ErrorIs(t, err, ErrInvalidWeight)

	hugeWeight := adultLarge()
	hugeWeight.WeightKg = 1e300
	_, err = GenerateDietRecommendations(hugeWeight)
	require.ErrorIs(t, err, ErrInvalidWeight)
	_, err = DailyPortionGrams(1e300, SizeSmall)
	require.ErrorIs(t, err, ErrInvalidWeight)
	_, err = DailyPortionGrams(MaxWeightKg+0.1, SizeGiant)
	require.ErrorIs(t, err, ErrInvalidWeight)

	grams, err := DailyPortionGrams(MaxWeightKg, SizeSmall)
	require.NoError(t, err)
	assert.Equal(t, 8000, grams)

	unknownSize := adultLarge()
	unknownSize.Size = "unknown"
	_, err = GenerateDietRecommendations(unknownSize)
	require.ErrorIs(t, err, ErrUnknownSize)
	_, err = GenerateCareRecommendations(unknownSize)
	require.ErrorIs(t, err, ErrUnknownSize)

	negativeAge := adultLarge()
	negativeAge.AgeValue = -1
	_, err = GenerateVaccineSchedule(negativeAge)
	require.ErrorIs(t, err, ErrInvalidAge)

	nanAge := adultLarge()
	nanAge.AgeValue = math.NaN()
	_, err = GenerateCareRecommendations(nanAge)
	require.ErrorIs(t, err, ErrInvalidAge)

	badActivity := adultLarge()
	badActivity.ActivityLevel = "extreme"
	_, err = GenerateDietRecommendations(badActivity)
	require.ErrorIs(t, err, ErrUnknownActivityLevel)
}

func TestGenerators_AreIndependent(t *testing.T) {
	// peso inválido rompe la dieta pero no vacunas ni cuidados
	p := adultLarge()
	p.WeightKg = -3

	_, err := GenerateDietRecommendations(p)
	require.Error(t, err)

	v, err := GenerateVaccineSchedule(p)
	require.NoError(t, err)
	assert.NotEmpty(t, v)

	c, err := GenerateCareRecommendations(p)
	require.NoError(t, err)
	assert.NotEmpty(t, c)
}

func TestParseAgeAndWeight(t *testing.T) {
	v, err := ParseAge(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = ParseWeight("12,5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	for _, bad := range []string{"", "abc", "-1", "NaN", "Inf"} {
		_, err := ParseAge(bad)
		assert.ErrorIsf(t, err, ErrInvalidAge, "age %q", bad)
	}
	v, err = ParseWeight("200")
	require.NoError(t, err)
	assert.Equal(t, 200.0, v)

	for _, bad := range []string{"", "x", "0", "-2", "200.5", "1e300"} {
		_, err := ParseWeight(bad)
		assert.ErrorIsf(t, err, ErrInvalidWeight, "weight %q", bad)
	}

	field, ok := FieldOf(mustErr(ParseWeight("0")))
	require.True(t, ok)
	assert.Equal(t, "weight", field)
}

// Edad decimal: 0,3 años son 3,6 meses (serie de cachorro) y 0,5 años son 6 meses (refuerzo).
// No se trunca a años enteros.
func TestDecimalAge_KeepsFractionAcrossBands(t *testing.T) {
	age, err := ParseAge("0,3")
	require.NoError(t, err)
	months, err := AgeInMonths(age, AgeUnitYears)
	require.NoError(t, err)
	assert.InDelta(t, 3.6, months, 1e-9)
	assert.Equal(t, BandPrimary, VaccineBandFor(months))

	p := adultLarge()
	p.AgeValue = 0.5
	got, err := GenerateVaccineSchedule(p)
	require.NoError(t, err)
	assert.Equal(t, []UrgencyStatus{StatusVerify, StatusVerify, StatusConsult}, statuses(got))

	p.AgeValue = 0.3
	got, err = GenerateVaccineSchedule(p)
	require.NoError(t, err)
	assert.Equal(t, StatusUrgent, got[0].Status)

	diet, err := GenerateDietRecommendations(p)
	require.NoError(t, err)
	assert.Equal(t, dietByStage[StageGrowth][0], diet[0])
}

func TestAgeInMonths_UnknownUnit(t *testing.T) {
	_, err := AgeInMonths(3, "weeks")
	require.ErrorIs(t, err, ErrInvalidAge)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "age_unit", ve.Field)
}

func TestUrgencyPriority(t *testing.T) {
	assert.Greater(t, StatusUrgent.Priority(), StatusNext.Priority())
	assert.Greater(t, StatusNext.Priority(), StatusVerify.Priority())
	assert.Greater(t, StatusVerify.Priority(), StatusMaintain.Priority())
	assert.Equal(t, StatusMaintain.Priority(), StatusConsult.Priority())
	assert.Equal(t, StatusConsult.Priority(), StatusFuture.Priority())
}

func titles(tips []CareTip) []string {
	out := make([]string, 0, len(tips))
	for _, t := range tips {
		out = append(out, t.Title)
	}
	return out
}

func statuses(entries []VaccineScheduleEntry) []UrgencyStatus {
	out := make([]UrgencyStatus, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Status)
	}
	return out
}

func mustErr(_ float64, err error) error { return err }
