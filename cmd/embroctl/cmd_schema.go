package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create any missing tables",
	Long: `Create the users, clients, employees, products and expenses tables
if they do not exist yet. Existing data is never touched, so the command is
safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", a.DB.Driver())
		return nil
	},
}
