package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwellhq/homecat/internal/validate"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NewSuppliersCommand creates the suppliers command group.
func NewSuppliersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suppliers",
		Aliases: []string{"supplier"},
		Short:   "Manage suppliers",
		Long:    "List, create, update, and delete restocking suppliers",
	}

	cmd.AddCommand(newSuppliersListCommand())
	cmd.AddCommand(newSuppliersGetCommand())
	cmd.AddCommand(newSuppliersCreateCommand())
	cmd.AddCommand(newSuppliersUpdateCommand())
	cmd.AddCommand(newSuppliersDeleteCommand())

	return cmd
}

var supplierColumns = []catalog.Column[catalog.Supplier]{
	{Header: "Name", Width: 40, Value: func(s catalog.Supplier) string { return s.Name }},
	{Header: "ID", Value: func(s catalog.Supplier) string { return s.ID }},
	{Header: "Contact", Width: 30, Value: func(s catalog.Supplier) string { return s.ContactName }},
	{Header: "Email", Width: 40, Value: func(s catalog.Supplier) string { return s.Email }},
	{Header: "Phone", Width: 20, Value: func(s catalog.Supplier) string { return s.Phone }},
}

func newSuppliersListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		Long:  "List restocking suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runListCommand(cmd, &flags, client.Suppliers().List, supplierColumns, "No suppliers found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func findSupplier(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.Supplier, error) {
	return findByNameOrID(ctx, client.Suppliers(), nameOrID,
		func(s *catalog.Supplier) string { return s.Name }, catalog.ErrSupplierNotFound)
}

func newSuppliersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUPPLIER_NAME_OR_ID",
		Short: "Get supplier details",
		Long:  "Display detailed information about a specific supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			supplier, err := findSupplier(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(supplier, renderSupplierDetails)
		},
	}
}

func renderSupplierDetails(supplier *catalog.Supplier) error {
	return renderDetails("Supplier details:", [][2]string{
		{"Name", supplier.Name},
		{"ID", supplier.ID},
		{"Contact", valueOrNA(supplier.ContactName)},
		{"Email", valueOrNA(supplier.Email)},
		{"Phone", valueOrNA(supplier.Phone)},
		{"Website", valueOrNA(supplier.Website)},
		{"Notes", valueOrNA(supplier.Notes)},
		{"Created", supplier.CreatedAt.Format(dateTimeFormat)},
		{"Updated", supplier.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newSuppliersCreateCommand() *cobra.Command {
	var name, contactName, email, phone, website, notes string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a supplier",
		Long:  "Create a new restocking supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.SupplierCreateRequest{
				Name:        name,
				ContactName: contactName,
				Email:       email,
				Phone:       phone,
				Website:     website,
				Notes:       notes,
			}

			err := validate.Struct(request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			supplier, err := client.Suppliers().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create supplier: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created supplier '%s' with ID %s\n", supplier.Name, supplier.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "supplier name (required)")
	cmd.Flags().StringVar(&contactName, "contact", "", "contact person")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&website, "website", "", "website URL")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSuppliersUpdateCommand() *cobra.Command {
	var name, contactName, email, phone, website, notes string

	cmd := &cobra.Command{
		Use:   "update SUPPLIER_NAME_OR_ID",
		Short: "Update a supplier",
		Long:  "Update an existing restocking supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.SupplierUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("contact") {
				request.ContactName = &contactName
			}

			if cmd.Flags().Changed("email") {
				request.Email = &email
			}

			if cmd.Flags().Changed("phone") {
				request.Phone = &phone
			}

			if cmd.Flags().Changed("website") {
				request.Website = &website
			}

			if cmd.Flags().Changed("notes") {
				request.Notes = &notes
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

			supplier, err := findSupplier(ctx, client, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Suppliers().Update(ctx, supplier.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update supplier: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated supplier '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new supplier name")
	cmd.Flags().StringVar(&contactName, "contact", "", "new contact person")
	cmd.Flags().StringVar(&email, "email", "", "new contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "new contact phone")
	cmd.Flags().StringVar(&website, "website", "", "new website URL")
	cmd.Flags().StringVar(&notes, "notes", "", "new free-form notes")

	return cmd
}

func newSuppliersDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete SUPPLIER_NAME_OR_ID",
		Short:      "Delete a supplier",
		Long:       "Delete a restocking supplier. Fails with a conflict if inventory rows still reference it.",
		EntityType: "supplier",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			supplier, err := findSupplier(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return supplier.ID, supplier.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Suppliers().Delete(ctx, id)
		},
	})
}
