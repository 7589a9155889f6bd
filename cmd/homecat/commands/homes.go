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

// NewHomesCommand creates the homes command group.
func NewHomesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "homes",
		Aliases: []string{"home"},
		Short:   "Manage homes",
		Long:    "List, create, update, and delete managed properties",
	}

	cmd.AddCommand(newHomesListCommand())
	cmd.AddCommand(newHomesGetCommand())
	cmd.AddCommand(newHomesCreateCommand())
	cmd.AddCommand(newHomesUpdateCommand())
	cmd.AddCommand(newHomesDeleteCommand())
	cmd.AddCommand(newHomesListRoomsCommand())
	cmd.AddCommand(newHomesListInventoryCommand())

	return cmd
}

var homeColumns = []catalog.Column[catalog.Home]{
	{Header: "Name", Width: 40, Value: func(h catalog.Home) string { return h.Name }},
	{Header: "ID", Value: func(h catalog.Home) string { return h.ID }},
	{Header: "City", Width: 25, Value: func(h catalog.Home) string { return h.City }},
	{Header: "Address", Width: 40, Value: func(h catalog.Home) string { return h.Address }},
	{Header: "Created", Value: func(h catalog.Home) string { return h.CreatedAt.Format(dateFormat) }},
}

func newHomesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List homes",
		Long:  "List managed properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runListCommand(cmd, &flags, client.Homes().List, homeColumns, "No homes found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func findHome(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.Home, error) {
	return findByNameOrID(ctx, client.Homes(), nameOrID,
		func(h *catalog.Home) string { return h.Name }, catalog.ErrHomeNotFound)
}

func newHomesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HOME_NAME_OR_ID",
		Short: "Get home details",
		Long:  "Display detailed information about a specific home",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			home, err := findHome(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(home, renderHomeDetails)
		},
	}
}

func renderHomeDetails(home *catalog.Home) error {
	return renderDetails("Home details:", [][2]string{
		{"Name", home.Name},
		{"ID", home.ID},
		{"Address", valueOrNA(home.Address)},
		{"City", valueOrNA(home.City)},
		{"Description", valueOrNA(home.Description)},
		{"Cover image", valueOrNA(home.CoverImageURL)},
		{"Images", strconv.Itoa(len(home.ImageURLs))},
		{"Created", home.CreatedAt.Format(dateTimeFormat)},
		{"Updated", home.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newHomesCreateCommand() *cobra.Command {
	var (
		name, address, city, description, coverImageURL string
		imageURLs                                       []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a home",
		Long:  "Create a new managed property",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.HomeCreateRequest{
				Name:          name,
				Address:       address,
				City:          city,
				Description:   description,
				CoverImageURL: coverImageURL,
				ImageURLs:     imageURLs,
			}

			err := validate.Struct(request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			home, err := client.Homes().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create home: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created home '%s' with ID %s\n", home.Name, home.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "home name (required)")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&description, "description", "", "home description")
	cmd.Flags().StringVar(&coverImageURL, "cover-image", "", "cover image URL")
	cmd.Flags().StringSliceVar(&imageURLs, "image", nil, "image URL (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newHomesUpdateCommand() *cobra.Command {
	var (
		name, address, city, description, coverImageURL string
		imageURLs                                       []string
	)

	cmd := &cobra.Command{
		Use:   "update HOME_NAME_OR_ID",
		Short: "Update a home",
		Long:  "Update an existing managed property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.HomeUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("address") {
				request.Address = &address
			}

			if cmd.Flags().Changed("city") {
				request.City = &city
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("cover-image") {
				request.CoverImageURL = &coverImageURL
			}

			if cmd.Flags().Changed("image") {
				request.ImageURLs = imageURLs
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

			home, err := findHome(ctx, client, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Homes().Update(ctx, home.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update home: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated home '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new home name")
	cmd.Flags().StringVar(&address, "address", "", "new street address")
	cmd.Flags().StringVar(&city, "city", "", "new city")
	cmd.Flags().StringVar(&description, "description", "", "new home description")
	cmd.Flags().StringVar(&coverImageURL, "cover-image", "", "new cover image URL")
	cmd.Flags().StringSliceVar(&imageURLs, "image", nil, "replacement image URL (repeatable)")

	return cmd
}

func newHomesDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete HOME_NAME_OR_ID",
		Short:      "Delete a home",
		Long:       "Delete a managed property and its dependent rooms, inventory, and guides",
		EntityType: "home",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			home, err := findHome(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return home.ID, home.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Homes().Delete(ctx, id)
		},
	})
}

func newHomesListRoomsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "rooms HOME_NAME_OR_ID",
		Short: "List a home's rooms",
		Long:  "List the rooms of a specific home",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			home, err := findHome(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			flags.filters = withHomeFilter(flags.filters, home.ID)

			return runListCommand(cmd, &flags, client.Rooms().List, roomColumns, "No rooms found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func newHomesListInventoryCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "inventory HOME_NAME_OR_ID",
		Short: "List a home's inventory",
		Long:  "List the inventory rows of a specific home",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			home, err := findHome(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			flags.filters = withHomeFilter(flags.filters, home.ID)

			return runListCommand(cmd, &flags, client.Inventory().List, inventoryColumns, "No inventory found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func withHomeFilter(filters map[string]string, homeID string) map[string]string {
	if filters == nil {
		filters = make(map[string]string, 1)
	}

	filters["homeId"] = homeID

	return filters
}
