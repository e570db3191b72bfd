package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "petid",
		Short:         "Recomendaciones de cuidado para perros",
		Long:          `Genera dieta, calendario de vacunas y cuidados a partir del perfil de la mascota, y consulta el catálogo de razas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRecommendCmd(), newBreedsCmd())
	return root
}
