package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// NewPlansCommand creates the plans command group.
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage recurrence plans",
		Long:  "List, get, create, update, and delete recurrence plans",
	}

	cmd.AddCommand(newPlansListCommand())
	cmd.AddCommand(newPlansGetCommand())
	cmd.AddCommand(newPlansCreateCommand())
	cmd.AddCommand(newPlansUpdateCommand())
	cmd.AddCommand(newPlansUpdateMetadataCommand())
	cmd.AddCommand(newPlansDeleteCommand())

	return cmd
}

func newPlansListCommand() *cobra.Command {
	opts := &pagarme.PlanListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		Long:  "List recurrence plans with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Plans().List(context.Background(), opts))
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by plan name")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by plan status")
	cmd.Flags().StringVar(&opts.CreatedSince, "created-since", "", "filter by creation date lower bound")
	cmd.Flags().StringVar(&opts.CreatedUntil, "created-until", "", "filter by creation date upper bound")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "page size")

	return cmd
}

func newPlansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAN_ID",
		Short: "Get a plan",
		Long:  "Get a single recurrence plan by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Plans().Get(context.Background(), args[0]))
		},
	}
}

func newPlansCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan",
		Long:  "Create a recurrence plan from a JSON or YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrRequestFileRequired
			}

			request, err := loadRequestFile[pagarme.PlanCreateRequest](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Plans().Create(context.Background(), request))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPlansUpdateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a plan",
		Long:  "Replace a recurrence plan from a JSON or YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrRequestFileRequired
			}

			request, err := loadRequestFile[pagarme.PlanCreateRequest](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Plans().Update(context.Background(), request))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPlansUpdateMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-metadata PLAN_ID KEY=VALUE [KEY=VALUE...]",
		Short: "Update plan metadata",
		Long:  "Replace the metadata of a recurrence plan",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd // plan ID plus at least one pair
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := parseMetadata(args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Plans().UpdateMetadata(context.Background(), args[0], metadata))
		},
	}
}

func newPlansDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PLAN_ID",
		Short: "Delete a plan",
		Long:  "Delete a recurrence plan by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return OutputEnvelope(client.Plans().Delete(context.Background(), args[0]))
		},
	}
}
