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

// NewInventoryCommand creates the inventory command group.
func NewInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage home inventory",
		Long:    "List, create, update, and delete per-home amenity stock",
	}

	cmd.AddCommand(newInventoryListCommand())
	cmd.AddCommand(newInventoryGetCommand())
	cmd.AddCommand(newInventoryCreateCommand())
	cmd.AddCommand(newInventoryUpdateCommand())
	cmd.AddCommand(newInventoryDeleteCommand())

	return cmd
}

var inventoryColumns = []catalog.Column[catalog.HomeInventory]{
	{Header: "ID", Value: func(i catalog.HomeInventory) string { return i.ID }},
	{Header: "Home", Value: func(i catalog.HomeInventory) string { return i.HomeID }},
	{Header: "Amenity", Value: func(i catalog.HomeInventory) string { return i.AmenityID }},
	{Header: "Room", Value: func(i catalog.HomeInventory) string { return i.RoomID }},
	{Header: "Qty", Value: func(i catalog.HomeInventory) string { return strconv.Itoa(i.Quantity) }},
	{Header: "Restock at", Value: func(i catalog.HomeInventory) string { return strconv.Itoa(i.RestockThreshold) }},
}

func newInventoryListCommand() *cobra.Command {
	var (
		flags    listFlags
		home     string
		supplier string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory rows",
		Long:  "List inventory rows, optionally scoped to one home or supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if home != "" {
				resolved, err := findHome(ctx, client, home)
				if err != nil {
					return err
				}

				flags.filters = withHomeFilter(flags.filters, resolved.ID)
			}

			if supplier != "" {
				resolved, err := findSupplier(ctx, client, supplier)
				if err != nil {
					return err
				}

				if flags.filters == nil {
					flags.filters = make(map[string]string, 1)
				}

				flags.filters["supplierId"] = resolved.ID
			}

			return runListCommand(cmd, &flags, client.Inventory().List, inventoryColumns, "No inventory found")
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&home, "home", "", "restrict to one home (name or ID)")
	cmd.Flags().StringVar(&supplier, "supplier", "", "restrict to one supplier (name or ID)")

	return cmd
}

func newInventoryGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVENTORY_ID",
		Short: "Get inventory row details",
		Long:  "Display detailed information about a specific inventory row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			row, err := client.Inventory().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return outputOne(row, renderInventoryDetails)
		},
	}
}

func renderInventoryDetails(row *catalog.HomeInventory) error {
	return renderDetails("Inventory details:", [][2]string{
		{"ID", row.ID},
		{"Home", row.HomeID},
		{"Amenity", row.AmenityID},
		{"Room", valueOrNA(row.RoomID)},
		{"Supplier", valueOrNA(row.SupplierID)},
		{"Quantity", strconv.Itoa(row.Quantity)},
		{"Restock at", strconv.Itoa(row.RestockThreshold)},
		{"Notes", valueOrNA(row.Notes)},
		{"Created", row.CreatedAt.Format(dateTimeFormat)},
		{"Updated", row.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newInventoryCreateCommand() *cobra.Command {
	var (
		home, amenity, room, supplier, notes string
		quantity, restockThreshold           int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an inventory row",
		Long:  "Stock an amenity in a home",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			resolvedHome, err := findHome(ctx, client, home)
			if err != nil {
				return err
			}

			resolvedAmenity, err := findAmenity(ctx, client, amenity)
			if err != nil {
				return err
			}

			request := &catalog.HomeInventoryCreateRequest{
				HomeID:           resolvedHome.ID,
				AmenityID:        resolvedAmenity.ID,
				Quantity:         quantity,
				RestockThreshold: restockThreshold,
				Notes:            notes,
			}

			if room != "" {
				resolvedRoom, err := findRoom(ctx, client, room)
				if err != nil {
					return err
				}

				request.RoomID = resolvedRoom.ID
			}

			if supplier != "" {
				resolvedSupplier, err := findSupplier(ctx, client, supplier)
				if err != nil {
					return err
				}

				request.SupplierID = resolvedSupplier.ID
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			row, err := client.Inventory().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create inventory row: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created inventory row %s\n", row.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&home, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&amenity, "amenity", "", "amenity name or ID (required)")
	cmd.Flags().StringVar(&room, "room", "", "room name or ID")
	cmd.Flags().StringVar(&supplier, "supplier", "", "preferred supplier (name or ID)")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "stocked quantity")
	cmd.Flags().IntVar(&restockThreshold, "restock-at", 0, "restock threshold")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("amenity")

	return cmd
}

func newInventoryUpdateCommand() *cobra.Command {
	var (
		room, supplier, notes      string
		quantity, restockThreshold int
	)

	cmd := &cobra.Command{
		Use:   "update INVENTORY_ID",
		Short: "Update an inventory row",
		Long:  "Update the stock, room, or supplier of an inventory row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			request := &catalog.HomeInventoryUpdateRequest{}
			if cmd.Flags().Changed("room") {
				resolvedRoom, err := findRoom(ctx, client, room)
				if err != nil {
					return err
				}

				request.RoomID = &resolvedRoom.ID
			}

			if cmd.Flags().Changed("supplier") {
				resolvedSupplier, err := findSupplier(ctx, client, supplier)
				if err != nil {
					return err
				}

				request.SupplierID = &resolvedSupplier.ID
			}

			if cmd.Flags().Changed("quantity") {
				request.Quantity = &quantity
			}

			if cmd.Flags().Changed("restock-at") {
				request.RestockThreshold = &restockThreshold
			}

			if cmd.Flags().Changed("notes") {
				request.Notes = &notes
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			row, err := client.Inventory().Update(ctx, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update inventory row: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated inventory row %s\n", row.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&room, "room", "", "new room (name or ID)")
	cmd.Flags().StringVar(&supplier, "supplier", "", "new preferred supplier (name or ID)")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new stocked quantity")
	cmd.Flags().IntVar(&restockThreshold, "restock-at", 0, "new restock threshold")
	cmd.Flags().StringVar(&notes, "notes", "", "new free-form notes")

	return cmd
}

func newInventoryDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete INVENTORY_ID",
		Short:      "Delete an inventory row",
		Long:       "Remove an amenity's stock record from a home",
		EntityType: "inventory row",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			row, err := client.Inventory().Get(ctx, nameOrID)
			if err != nil {
				return "", "", err
			}

			return row.ID, row.ID, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Inventory().Delete(ctx, id)
		},
	})
}
