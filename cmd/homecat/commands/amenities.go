package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dwellhq/homecat/internal/validate"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NewAmenitiesCommand creates the amenities command group.
func NewAmenitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "amenities",
		Aliases: []string{"amenity"},
		Short:   "Manage amenities",
		Long:    "List, create, update, and delete catalog amenities",
	}

	cmd.AddCommand(newAmenitiesListCommand())
	cmd.AddCommand(newAmenitiesGetCommand())
	cmd.AddCommand(newAmenitiesCreateCommand())
	cmd.AddCommand(newAmenitiesUpdateCommand())
	cmd.AddCommand(newAmenitiesDeleteCommand())

	return cmd
}

var amenityColumns = []catalog.Column[catalog.Amenity]{
	{Header: "Name", Width: 40, Value: func(a catalog.Amenity) string { return a.Name }},
	{Header: "ID", Value: func(a catalog.Amenity) string { return a.ID }},
	{Header: "Category", Value: func(a catalog.Amenity) string { return a.CategoryID }},
	{Header: "Brand", Value: func(a catalog.Amenity) string { return a.BrandID }},
	{Header: "Model", Width: 30, Value: func(a catalog.Amenity) string { return a.Model }},
}

func newAmenitiesListCommand() *cobra.Command {
	var (
		flags    listFlags
		category string
		brand    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List amenities",
		Long:  "List catalog amenities, optionally filtered by category or brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if category != "" {
				resolved, err := findCategory(ctx, client, category)
				if err != nil {
					return err
				}

				if flags.filters == nil {
					flags.filters = make(map[string]string, 2)
				}

				flags.filters["categoryId"] = resolved.ID
			}

			if brand != "" {
				resolved, err := findBrand(ctx, client, brand)
				if err != nil {
					return err
				}

				if flags.filters == nil {
					flags.filters = make(map[string]string, 1)
				}

				flags.filters["brandId"] = resolved.ID
			}

			return runListCommand(cmd, &flags, client.Amenities().List, amenityColumns, "No amenities found")
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&category, "category", "", "restrict to one category (name or ID)")
	cmd.Flags().StringVar(&brand, "brand", "", "restrict to one brand (name or ID)")

	return cmd
}

func findAmenity(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.Amenity, error) {
	return findByNameOrID(ctx, client.Amenities(), nameOrID,
		func(a *catalog.Amenity) string { return a.Name }, catalog.ErrAmenityNotFound)
}

func newAmenitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get AMENITY_NAME_OR_ID",
		Short: "Get amenity details",
		Long:  "Display detailed information about a specific amenity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			amenity, err := findAmenity(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(amenity, renderAmenityDetails)
		},
	}
}

func renderAmenityDetails(amenity *catalog.Amenity) error {
	return renderDetails("Amenity details:", [][2]string{
		{"Name", amenity.Name},
		{"ID", amenity.ID},
		{"Category", amenity.CategoryID},
		{"Brand", valueOrNA(amenity.BrandID)},
		{"Model", valueOrNA(amenity.Model)},
		{"Description", valueOrNA(amenity.Description)},
		{"Images", strconv.Itoa(len(amenity.ImageURLs))},
		{"Created", amenity.CreatedAt.Format(dateTimeFormat)},
		{"Updated", amenity.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newAmenitiesCreateCommand() *cobra.Command {
	var (
		name, category, brand, model, description string
		imageURLs                                 []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an amenity",
		Long:  "Create a new catalog amenity",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			resolvedCategory, err := findCategory(ctx, client, category)
			if err != nil {
				return err
			}

			request := &catalog.AmenityCreateRequest{
				Name:        name,
				CategoryID:  resolvedCategory.ID,
				Model:       model,
				Description: description,
				ImageURLs:   imageURLs,
			}

			if brand != "" {
				resolvedBrand, err := findBrand(ctx, client, brand)
				if err != nil {
					return err
				}

				request.BrandID = resolvedBrand.ID
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			amenity, err := client.Amenities().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create amenity: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created amenity '%s' with ID %s\n", amenity.Name, amenity.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "amenity name (required)")
	cmd.Flags().StringVar(&category, "category", "", "category name or ID (required)")
	cmd.Flags().StringVar(&brand, "brand", "", "brand name or ID")
	cmd.Flags().StringVar(&model, "model", "", "model identifier")
	cmd.Flags().StringVar(&description, "description", "", "amenity description")
	cmd.Flags().StringSliceVar(&imageURLs, "image", nil, "image URL (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newAmenitiesUpdateCommand() *cobra.Command {
	var (
		name, category, brand, model, description string
		imageURLs                                 []string
	)

	cmd := &cobra.Command{
		Use:   "update AMENITY_NAME_OR_ID",
		Short: "Update an amenity",
		Long:  "Update an existing catalog amenity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			amenity, err := findAmenity(ctx, client, args[0])
			if err != nil {
				return err
			}

			request := &catalog.AmenityUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("category") {
				resolvedCategory, err := findCategory(ctx, client, category)
				if err != nil {
					return err
				}

				request.CategoryID = &resolvedCategory.ID
			}

			if cmd.Flags().Changed("brand") {
				resolvedBrand, err := findBrand(ctx, client, brand)
				if err != nil {
					return err
				}

				request.BrandID = &resolvedBrand.ID
			}

			if cmd.Flags().Changed("model") {
				request.Model = &model
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("image") {
				request.ImageURLs = imageURLs
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			updated, err := client.Amenities().Update(ctx, amenity.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update amenity: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated amenity '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new amenity name")
	cmd.Flags().StringVar(&category, "category", "", "new category name or ID")
	cmd.Flags().StringVar(&brand, "brand", "", "new brand name or ID")
	cmd.Flags().StringVar(&model, "model", "", "new model identifier")
	cmd.Flags().StringVar(&description, "description", "", "new amenity description")
	cmd.Flags().StringSliceVar(&imageURLs, "image", nil, "replacement image URL (repeatable)")

	return cmd
}

func newAmenitiesDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete AMENITY_NAME_OR_ID",
		Short:      "Delete an amenity",
		Long:       "Delete a catalog amenity. Fails with a conflict if inventory rows still reference it.",
		EntityType: "amenity",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			amenity, err := findAmenity(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return amenity.ID, amenity.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Amenities().Delete(ctx, id)
		},
	})
}
