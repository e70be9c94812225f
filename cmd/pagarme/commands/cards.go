package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage customer cards",
		Long:  "Store and delete cards on a customer",
	}

	cmd.AddCommand(newCardsCreateCommand())
	cmd.AddCommand(newCardsDeleteCommand())

	return cmd
}

func newCardsCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create CUSTOMER_ID",
		Short: "Store a card",
		Long:  "Store a card on a customer from a JSON or YAML request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrRequestFileRequired
			}

			request, err := loadRequestFile[pagarme.CardCreateRequest](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Cards().Create(context.Background(), args[0], request))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCardsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CUSTOMER_ID CARD_ID",
		Short: "Delete a card",
		Long:  "Delete a stored card from a customer",
		Args:  cobra.ExactArgs(constants.TwoArguments),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Cards().Delete(context.Background(), args[0], args[1]))
		},
	}
}
