package recommendations

// VaccineBand es la franja del calendario de vacunación.
type VaccineBand string

const (
	BandPrimary VaccineBand = "primary" // < 4 meses: serie de cachorro
	BandBooster VaccineBand = "booster" // 4..11 meses
	BandAnnual  VaccineBand = "annual"  // >= 12 meses
)

func VaccineBandFor(months float64) VaccineBand {
	switch {
	case months < 4:
		return BandPrimary
	case months < 12:
		return BandBooster
	default:
		return BandAnnual
	}
}

// Orden fijo dentro de cada franja; no se reordena por prioridad.
var vaccineTable = map[VaccineBand][]VaccineScheduleEntry{
	BandPrimary: {
		{Vaccine: "V8 ou V10 (1ª dose)", Timing: "6-8 semanas", Status: StatusUrgent},
		{Vaccine: "V8 ou V10 (2ª dose)", Timing: "9-12 semanas", Status: StatusNext},
		{Vaccine: "V8 ou V10 (3ª dose)", Timing: "13-16 semanas", Status: StatusFuture},
		{Vaccine: "Antirrábica", Timing: "16 semanas", Status: StatusFuture},
	},
	BandBooster: {
		{Vaccine: "V8 ou V10 (reforço)", Timing: "Anual", Status: StatusVerify},
		{Vaccine: "Antirrábica (reforço)", Timing: "Anual", Status: StatusVerify},
		{Vaccine: "Giárdia", Timing: "Opcional", Status: StatusConsult},
	},
	BandAnnual: {
		{Vaccine: "V8 ou V10 (anual)", Timing: "A cada 12 meses", Status: StatusMaintain},
		{Vaccine: "Antirrábica (anual)", Timing: "A cada 12 meses", Status: StatusMaintain},
		{Vaccine: "Leishmaniose", Timing: "Anual (áreas endêmicas)", Status: StatusConsult},
		{Vaccine: "Gripe Canina", Timing: "Anual (opcional)", Status: StatusConsult},
	},
}

// GenerateVaccineSchedule solo depende de la edad; peso y porte no se validan acá.
func GenerateVaccineSchedule(p PetProfile) ([]VaccineScheduleEntry, error) {
	months, err := p.ageInMonths()
	if err != nil {
		return nil, err
	}
	return VaccineScheduleForAge(months), nil
}

// VaccineScheduleForAge devuelve una copia: el llamador puede mutarla sin tocar la tabla.
func VaccineScheduleForAge(months float64) []VaccineScheduleEntry {
	entries := vaccineTable[VaccineBandFor(months)]
	out := make([]VaccineScheduleEntry, len(entries))
	copy(out, entries)
	return out
}
