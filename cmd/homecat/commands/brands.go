package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwellhq/homecat/internal/validate"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NewBrandsCommand creates the brands command group.
func NewBrandsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "brands",
		Aliases: []string{"brand"},
		Short:   "Manage brands",
		Long:    "List, create, update, and delete manufacturer brands",
	}

	cmd.AddCommand(newBrandsListCommand())
	cmd.AddCommand(newBrandsGetCommand())
	cmd.AddCommand(newBrandsCreateCommand())
	cmd.AddCommand(newBrandsUpdateCommand())
	cmd.AddCommand(newBrandsDeleteCommand())

	return cmd
}

var brandColumns = []catalog.Column[catalog.Brand]{
	{Header: "Name", Width: 40, Value: func(b catalog.Brand) string { return b.Name }},
	{Header: "ID", Value: func(b catalog.Brand) string { return b.ID }},
	{Header: "Description", Width: 50, Value: func(b catalog.Brand) string { return b.Description }},
	{Header: "Created", Value: func(b catalog.Brand) string { return b.CreatedAt.Format(dateFormat) }},
}

func newBrandsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List brands",
		Long:  "List manufacturer brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runListCommand(cmd, &flags, client.Brands().List, brandColumns, "No brands found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func findBrand(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.Brand, error) {
	return findByNameOrID(ctx, client.Brands(), nameOrID,
		func(b *catalog.Brand) string { return b.Name }, catalog.ErrBrandNotFound)
}

func newBrandsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BRAND_NAME_OR_ID",
		Short: "Get brand details",
		Long:  "Display detailed information about a specific brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			brand, err := findBrand(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(brand, renderBrandDetails)
		},
	}
}

func renderBrandDetails(brand *catalog.Brand) error {
	return renderDetails("Brand details:", [][2]string{
		{"Name", brand.Name},
		{"ID", brand.ID},
		{"Description", valueOrNA(brand.Description)},
		{"Created", brand.CreatedAt.Format(dateTimeFormat)},
		{"Updated", brand.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newBrandsCreateCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a brand",
		Long:  "Create a new manufacturer brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.BrandCreateRequest{
				Name:        name,
				Description: description,
			}

			err := validate.Struct(request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			brand, err := client.Brands().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create brand: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created brand '%s' with ID %s\n", brand.Name, brand.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "brand name (required)")
	cmd.Flags().StringVar(&description, "description", "", "brand description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBrandsUpdateCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update BRAND_NAME_OR_ID",
		Short: "Update a brand",
		Long:  "Update an existing manufacturer brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.BrandUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			err := validate.Struct(request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			brand, err := findBrand(ctx, client, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Brands().Update(ctx, brand.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update brand: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated brand '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new brand name")
	cmd.Flags().StringVar(&description, "description", "", "new brand description")

	return cmd
}

func newBrandsDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete BRAND_NAME_OR_ID",
		Short:      "Delete a brand",
		Long:       "Delete a manufacturer brand",
		EntityType: "brand",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			brand, err := findBrand(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return brand.ID, brand.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Brands().Delete(ctx, id)
		},
	})
}
