package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"petid/internal/domain/recommendations"
)

// errSectionsFailed hace que el comando salga con código != 0 cuando alguna sección falló.
var errSectionsFailed = errors.New("some sections could not be generated")

type recommendFlags struct {
	in      recommendations.ProfileInput
	age     string
	weight  string
	jsonOut bool
}

func newRecommendCmd() *cobra.Command {
	f := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Genera dieta, vacunas y cuidados para un perfil",
		Example: `  petid recommend --name Thor --breed "Labrador Retriever" --age 3 --weight 30 --size large
  petid recommend --name Luna --age 8 --age-unit months --weight 4.5 --size small --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.in.Age = recommendations.NumberText(f.age)
			f.in.Weight = recommendations.NumberText(f.weight)
			return runRecommend(cmd.OutOrStdout(), f.in, f.jsonOut)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.in.Name, "name", "", "nombre de la mascota")
	fl.StringVar(&f.in.Breed, "breed", "", "raza")
	fl.StringVar(&f.age, "age", "", "edad (número)")
	fl.StringVar((*string)(&f.in.AgeUnit), "age-unit", string(recommendations.AgeUnitYears), "months|years")
	fl.StringVar(&f.weight, "weight", "", "peso en kg")
	fl.StringVar((*string)(&f.in.Gender), "gender", string(recommendations.GenderMale), "male|female")
	fl.StringVar((*string)(&f.in.Size), "size", string(recommendations.SizeMedium), "small|medium|large|giant")
	fl.StringVar((*string)(&f.in.ActivityLevel), "activity", string(recommendations.ActivityModerate), "low|moderate|high")
	fl.StringVar(&f.in.Allergies, "allergies", "", "alergias o restricciones")
	fl.StringVar(&f.in.HealthConditions, "health", "", "condiciones de salud")
	fl.BoolVar(&f.jsonOut, "json", false, "salida JSON")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

type sectionOutput struct {
	Diet     recommendations.DietRecommendation     `json:"diet,omitempty"`
	Vaccines []recommendations.VaccineScheduleEntry `json:"vaccines,omitempty"`
	Care     []recommendations.CareTip              `json:"care,omitempty"`
	Errors   map[string]string                      `json:"errors,omitempty"`
}

func runRecommend(w io.Writer, in recommendations.ProfileInput, jsonOut bool) error {
	profile, fieldErrs := in.Parse()
	recs := recommendations.Generate(profile, fieldErrs)

	out := sectionOutput{Diet: recs.Diet, Vaccines: recs.Vaccines, Care: recs.Care}
	for name, err := range map[string]error{"diet": recs.DietErr, "vaccines": recs.VaccinesErr, "care": recs.CareErr} {
		if err == nil {
			continue
		}
		if out.Errors == nil {
			out.Errors = map[string]string{}
		}
		out.Errors[name] = err.Error()
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		printText(w, profile, recs)
	}

	if !recs.OK() {
		return errSectionsFailed
	}
	return nil
}

func printText(w io.Writer, p recommendations.PetProfile, r recommendations.Recommendations) {
	if p.Name != "" {
		fmt.Fprintf(w, "%s\n\n", p.Name)
	}

	fmt.Fprintln(w, "Dieta")
	if r.DietErr != nil {
		fmt.Fprintf(w, "  ! %v\n", r.DietErr)
	}
	for _, line := range r.Diet {
		fmt.Fprintf(w, "  - %s\n", line)
	}

	fmt.Fprintln(w, "\nVacinas")
	if r.VaccinesErr != nil {
		fmt.Fprintf(w, "  ! %v\n", r.VaccinesErr)
	}
	for _, v := range r.Vaccines {
		fmt.Fprintf(w, "  - %-22s %-28s [%s]\n", v.Vaccine, v.Timing, v.Status)
	}

	fmt.Fprintln(w, "\nCuidados")
	if r.CareErr != nil {
		fmt.Fprintf(w, "  ! %v\n", r.CareErr)
	}
	for _, c := range r.Care {
		fmt.Fprintf(w, "  - %s: %s\n", c.Title, c.Description)
	}

	if p.Allergies != "" {
		fmt.Fprintf(w, "\nAtenção: Alergias/Restrições: %s\n", p.Allergies)
	}
}
