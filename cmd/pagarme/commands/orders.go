package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
		Long:  "Submit one-off orders",
	}

	cmd.AddCommand(newOrdersCreateCommand())

	return cmd
}

// orderFile is the request-file shape for an order. Payments are flattened:
// card fields and boleto fields live side by side, discriminated by
// payment_method.
type orderFile struct {
	Customer pagarme.OrderCustomer `json:"customer"`
	Items    []pagarme.OrderItem   `json:"items"`
	Payments []orderFilePayment    `json:"payments"`
}

type orderFilePayment struct {
	PaymentMethod       string                     `json:"payment_method"`
	CardID              string                     `json:"card_id,omitempty"`
	Card                *pagarme.CardCreateRequest `json:"card,omitempty"`
	CVV                 string                     `json:"cvv,omitempty"`
	Installments        int                        `json:"installments,omitempty"`
	StatementDescriptor string                     `json:"statement_descriptor,omitempty"`
	Instructions        string                     `json:"instructions,omitempty"`
	DueAt               string                     `json:"due_at,omitempty"`
}

func newOrdersCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Long:  "Create an order from a JSON or YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrRequestFileRequired
			}

			request, err := loadRequestFile[orderFile](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			env, err := client.Orders().Create(context.Background(), buildOrder(request))
			if err != nil {
				return err
			}

			return OutputEnvelope(env)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func buildOrder(request *orderFile) pagarme.OrderBuilder {
	order := pagarme.NewOrder().WithCustomer(request.Customer)

	for _, item := range request.Items {
		order = order.WithItem(item)
	}

	for _, payment := range request.Payments {
		method := pagarme.PaymentMethod(payment.PaymentMethod)

		if method == pagarme.PaymentMethodBoleto {
			order = order.WithBoletoPayment(pagarme.BoletoPayment{
				Instructions: payment.Instructions,
				DueAt:        payment.DueAt,
			})

			continue
		}

		order = order.WithCardPayment(pagarme.CardPayment{
			Method:              method,
			CardID:              payment.CardID,
			Card:                payment.Card,
			CVV:                 payment.CVV,
			Installments:        payment.Installments,
			StatementDescriptor: payment.StatementDescriptor,
		})
	}

	return order
}
