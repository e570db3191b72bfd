package recommendations

// Recommendations junta las tres salidas. Cada generador corre por separado:
// el error de uno no impide los otros y nunca hay salida parcial dentro de una sección.
type Recommendations struct {
	Diet    DietRecommendation
	DietErr error

	Vaccines    []VaccineScheduleEntry
	VaccinesErr error

	Care    []CareTip
	CareErr error
}

// Generate corre los tres generadores. fieldErrs (de ProfileInput.Parse) corta
// los generadores que dependen de un campo que no se pudo parsear.
func Generate(p PetProfile, fieldErrs FieldErrors) Recommendations {
	var r Recommendations

	if err := firstErr(fieldErrs, "age", "weight"); err != nil {
		r.DietErr = err
	} else {
		r.Diet, r.DietErr = GenerateDietRecommendations(p)
	}

	if err := firstErr(fieldErrs, "age"); err != nil {
		r.VaccinesErr = err
	} else {
		r.Vaccines, r.VaccinesErr = GenerateVaccineSchedule(p)
	}

	if err := firstErr(fieldErrs, "age"); err != nil {
		r.CareErr = err
	} else {
		r.Care, r.CareErr = GenerateCareRecommendations(p)
	}

	return r
}

func (r Recommendations) OK() bool {
	return r.DietErr == nil && r.VaccinesErr == nil && r.CareErr == nil
}

func firstErr(errs FieldErrors, fields ...string) error {
	for _, f := range fields {
		if err, ok := errs[f]; ok && err != nil {
			return err
		}
	}
	return nil
}
