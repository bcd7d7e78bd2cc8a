package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"pet-adoption-catalog/internal/domain/pets"

	"github.com/spf13/cobra"
)

func catalogCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the pet catalog from the terminal",
	}

	cmd.AddCommand(catalogListCmd(configPath))
	cmd.AddCommand(catalogShowCmd(configPath))
	cmd.AddCommand(catalogOptionsCmd(configPath))
	return cmd
}

// openStore arma el store con la fuente configurada; los logs van a stderr.
func openStore(ctx context.Context, configPath string) (*pets.Store, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	src, err := buildSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pets.NewStore(src, pets.StoreOptions{Logger: newLogger(cfg, os.Stderr)}), nil
}

func catalogListCmd(configPath *string) *cobra.Command {
	var (
		search, animalType, gender, age string
		page, pageSize                  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bracket, err := pets.ParseAgeBracket(age)
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), *configPath)
			if err != nil {
				return err
			}

			res := store.Search(cmd.Context(), pets.Criteria{
				Search:     search,
				Gender:     gender,
				AnimalType: animalType,
				Age:        bracket,
			}, page, pageSize)

			return printPage(cmd.OutOrStdout(), res, store)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Name substring (case-insensitive)")
	cmd.Flags().StringVar(&animalType, "type", "", "Species filter")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender filter")
	cmd.Flags().StringVar(&age, "age", "", "Age bracket (young, 1-3, 4-7, 8+)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", pets.DefaultPageSize, "Page size")
	return cmd
}

func printPage(w io.Writer, res pets.Page, store *pets.Store) error {
	now := store.Now()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tGENDER\tAGE")
	for _, p := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.FirstName, p.AnimalType, p.Gender, pets.AgeDisplay(p, now))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d/%d, %d pets\n", res.Page, res.Pages, res.Total)
	return err
}

func catalogShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			p, err := store.GetByID(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, pets.ErrNotFound) || errors.Is(err, pets.ErrInvalidInput) {
					return fmt.Errorf("pet %q not found", args[0])
				}
				return err
			}

			now := store.Now()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", p.FirstName, p.ID)
			fmt.Fprintf(w, "type:   %s\n", p.AnimalType)
			fmt.Fprintf(w, "gender: %s\n", p.Gender)
			fmt.Fprintf(w, "age:    %s (born %d)\n", pets.AgeDisplay(p, now), p.BirthYear)
			if p.PictureURL != "" {
				fmt.Fprintf(w, "photo:  %s\n", p.PictureURL)
			}
			if p.Description != "" {
				fmt.Fprintf(w, "\n%s\n", p.Description)
			}
			return nil
		},
	}
}

func catalogOptionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the distinct filter values present in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			o := store.Options(cmd.Context())

			brackets := make([]string, 0, len(o.AgeBrackets))
			for _, b := range o.AgeBrackets {
				brackets = append(brackets, string(b))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "types:   %s\n", strings.Join(o.AnimalTypes, ", "))
			fmt.Fprintf(w, "genders: %s\n", strings.Join(o.Genders, ", "))
			fmt.Fprintf(w, "ages:    %s\n", strings.Join(brackets, ", "))
			return nil
		},
	}
}
