package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Manage subscriptions",
		Long:  "List, get, create, and cancel subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	opts := &pagarme.SubscriptionListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions with pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Subscriptions().List(context.Background(), opts))
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "page size")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get a subscription",
		Long:  "Get a single subscription by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Subscriptions().Get(context.Background(), args[0]))
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long:  "Create a subscription from a JSON or YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrRequestFileRequired
			}

			request, err := loadRequestFile[pagarme.SubscriptionCreateRequest](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Subscriptions().Create(context.Background(), request))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSubscriptionsCancelCommand() *cobra.Command {
	var cancelPendingInvoices bool

	cmd := &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription, optionally cancelling its pending invoices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Subscriptions().Cancel(context.Background(), args[0], cancelPendingInvoices))
		},
	}

	cmd.Flags().BoolVar(&cancelPendingInvoices, "cancel-pending-invoices", false, "also cancel pending invoices")

	return cmd
}
