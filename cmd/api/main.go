package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "pet-adoption-catalog"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Pet adoption catalog",
		Long: `Catálogo de mascotas en adopción.

Sin subcomando levanta el servidor HTTP (igual que "serve").
"catalog" permite consultar el catálogo desde la terminal con los mismos filtros.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath, "")
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(catalogCmd(&configPath))

	return cmd
}
