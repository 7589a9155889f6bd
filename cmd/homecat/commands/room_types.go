package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwellhq/homecat/internal/validate"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NewRoomTypesCommand creates the room-types command group.
func NewRoomTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "room-types",
		Aliases: []string{"room-type", "rt"},
		Short:   "Manage room types",
		Long:    "List, create, update, and delete room classifications",
	}

	cmd.AddCommand(newRoomTypesListCommand())
	cmd.AddCommand(newRoomTypesGetCommand())
	cmd.AddCommand(newRoomTypesCreateCommand())
	cmd.AddCommand(newRoomTypesUpdateCommand())
	cmd.AddCommand(newRoomTypesDeleteCommand())

	return cmd
}

var roomTypeColumns = []catalog.Column[catalog.RoomType]{
	{Header: "Name", Width: 40, Value: func(rt catalog.RoomType) string { return rt.Name }},
	{Header: "ID", Value: func(rt catalog.RoomType) string { return rt.ID }},
	{Header: "Description", Width: 50, Value: func(rt catalog.RoomType) string { return rt.Description }},
	{Header: "Created", Value: func(rt catalog.RoomType) string { return rt.CreatedAt.Format(dateFormat) }},
}

func newRoomTypesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List room types",
		Long:  "List room classifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runListCommand(cmd, &flags, client.RoomTypes().List, roomTypeColumns, "No room types found")
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func findRoomType(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.RoomType, error) {
	return findByNameOrID(ctx, client.RoomTypes(), nameOrID,
		func(rt *catalog.RoomType) string { return rt.Name }, catalog.ErrRoomTypeNotFound)
}

func newRoomTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ROOM_TYPE_NAME_OR_ID",
		Short: "Get room type details",
		Long:  "Display detailed information about a specific room type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			roomType, err := findRoomType(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(roomType, renderRoomTypeDetails)
		},
	}
}

func renderRoomTypeDetails(roomType *catalog.RoomType) error {
	return renderDetails("Room type details:", [][2]string{
		{"Name", roomType.Name},
		{"ID", roomType.ID},
		{"Description", valueOrNA(roomType.Description)},
		{"Created", roomType.CreatedAt.Format(dateTimeFormat)},
		{"Updated", roomType.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newRoomTypesCreateCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a room type",
		Long:  "Create a new room classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.RoomTypeCreateRequest{
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

			roomType, err := client.RoomTypes().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create room type: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created room type '%s' with ID %s\n", roomType.Name, roomType.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "room type name (required)")
	cmd.Flags().StringVar(&description, "description", "", "room type description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomTypesUpdateCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update ROOM_TYPE_NAME_OR_ID",
		Short: "Update a room type",
		Long:  "Update an existing room classification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &catalog.RoomTypeUpdateRequest{}
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

			roomType, err := findRoomType(ctx, client, args[0])
			if err != nil {
				return err
			}

			updated, err := client.RoomTypes().Update(ctx, roomType.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update room type: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated room type '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new room type name")
	cmd.Flags().StringVar(&description, "description", "", "new room type description")

	return cmd
}

func newRoomTypesDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete ROOM_TYPE_NAME_OR_ID",
		Short:      "Delete a room type",
		Long:       "Delete a room classification",
		EntityType: "room type",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			roomType, err := findRoomType(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return roomType.ID, roomType.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.RoomTypes().Delete(ctx, id)
		},
	})
}
