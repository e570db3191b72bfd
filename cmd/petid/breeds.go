package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"petid/internal/domain/breeds"
)

func newBreedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "Consulta el catálogo de razas",
	}
	cmd.AddCommand(newBreedsListCmd(), newBreedsShowCmd())
	return cmd
}

func newBreedsListCmd() *cobra.Command {
	var category, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista razas, opcionalmente por categoría o nombre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := breeds.Default()
			if err != nil {
				return err
			}
			return listBreeds(cmd.OutOrStdout(), c, category, query)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "toy|small|medium|large|giant")
	cmd.Flags().StringVar(&query, "query", "", "texto a buscar en el nombre")
	return cmd
}

func listBreeds(w io.Writer, c *breeds.Catalog, category, query string) error {
	items := c.All()
	if category != "" {
		filtered, err := c.ByCategory(breeds.Category(strings.ToLower(category)))
		if err != nil {
			return err
		}
		items = filtered
	}
	if query != "" {
		matches := map[string]bool{}
		for _, b := range c.SearchByName(query) {
			matches[b.ID] = true
		}
		kept := items[:0]
		for _, b := range items {
			if matches[b.ID] {
				kept = append(kept, b)
			}
		}
		items = kept
	}

	for _, b := range items {
		fmt.Fprintf(w, "%-22s %-22s %-7s %g-%g kg\n", b.ID, b.Name, b.Category, b.WeightKg.Min, b.WeightKg.Max)
	}
	return nil
}

func newBreedsShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Muestra el detalle de una raza (incluye contenido premium)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := breeds.Default()
			if err != nil {
				return err
			}
			b, err := c.ByID(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return showBreed(cmd.OutOrStdout(), b, jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "salida JSON")
	return cmd
}

func showBreed(w io.Writer, b breeds.Breed, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}

	fmt.Fprintf(w, "%s (%s)\n", b.Name, b.NameEn)
	fmt.Fprintf(w, "Origem: %s  Porte: %s  Peso: %g-%g kg  Vida: %g-%g anos\n\n",
		b.Origin, b.Category, b.WeightKg.Min, b.WeightKg.Max, b.LifeExpectancyYears.Min, b.LifeExpectancyYears.Max)
	fmt.Fprintln(w, b.Description)

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s\n", title)
		for _, l := range lines {
			fmt.Fprintf(w, "  - %s\n", l)
		}
	}
	section("Características", b.Characteristics)
	section("Saúde", b.HealthConcerns)
	section("Dieta", b.Premium.Diet)
	section("Adestramento", b.Premium.TrainingTips)
	section("Vacinas", b.Premium.VaccineSchedule)
	return nil
}
