package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwellhq/homecat/internal/validate"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage amenity categories",
		Long:    "List, create, update, and delete amenity categories",
	}

	cmd.AddCommand(newCategoriesListCommand())
	cmd.AddCommand(newCategoriesGetCommand())
	cmd.AddCommand(newCategoriesCreateCommand())
	cmd.AddCommand(newCategoriesUpdateCommand())
	cmd.AddCommand(newCategoriesDeleteCommand())

	return cmd
}

var categoryColumns = []catalog.Column[catalog.Category]{
	{Header: "Name", Width: 40, Value: func(c catalog.Category) string { return c.Name }},
	{Header: "ID", Value: func(c catalog.Category) string { return c.ID }},
	{Header: "Description", Width: 50, Value: func(c catalog.Category) string { return c.Description }},
	{Header: "Created", Value: func(c catalog.Category) string { return c.CreatedAt.Format(dateFormat) }},
}

func newCategoriesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  "List amenity categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runListCommand(cmd, &flags, client.Categories().List, categoryColumns, "No categories found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func findCategory(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.Category, error) {
	return findByNameOrID(ctx, client.Categories(), nameOrID,
		func(c *catalog.Category) string { return c.Name }, catalog.ErrCategoryNotFound)
}

func newCategoriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY_NAME_OR_ID",
		Short: "Get category details",
		Long:  "Display detailed information about a specific category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			category, err := findCategory(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(category, renderCategoryDetails)
		},
	}
}

func renderCategoryDetails(category *catalog.Category) error {
	return renderDetails("Category details:", [][2]string{
		{"Name", category.Name},
		{"ID", category.ID},
		{"Description", valueOrNA(category.Description)},
		{"Created", category.CreatedAt.Format(dateTimeFormat)},
		{"Updated", category.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newCategoriesCreateCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Long:  "Create a new amenity category",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.CategoryCreateRequest{
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

			category, err := client.Categories().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created category '%s' with ID %s\n", category.Name, category.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name (required)")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoriesUpdateCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update CATEGORY_NAME_OR_ID",
		Short: "Update a category",
		Long:  "Update an existing amenity category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.CategoryUpdateRequest{}
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

			category, err := findCategory(ctx, client, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Categories().Update(ctx, category.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated category '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name")
	cmd.Flags().StringVar(&description, "description", "", "new category description")

	return cmd
}

func newCategoriesDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete CATEGORY_NAME_OR_ID",
		Short:      "Delete a category",
		Long:       "Delete an amenity category",
		EntityType: "category",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			category, err := findCategory(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return category.ID, category.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Categories().Delete(ctx, id)
		},
	})
}
