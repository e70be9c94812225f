package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
		Long:  "Create gateway customers",
	}

	cmd.AddCommand(newCustomersCreateCommand())

	return cmd
}

func newCustomersCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a customer from a JSON or YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrRequestFileRequired
			}

			request, err := loadRequestFile[pagarme.CustomerCreateRequest](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Customers().Create(context.Background(), request))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
