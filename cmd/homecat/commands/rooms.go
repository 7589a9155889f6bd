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

// NewRoomsCommand creates the rooms command group.
func NewRoomsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rooms",
		Aliases: []string{"room"},
		Short:   "Manage rooms",
		Long:    "List, create, update, and delete rooms within homes",
	}

	cmd.AddCommand(newRoomsListCommand())
	cmd.AddCommand(newRoomsGetCommand())
	cmd.AddCommand(newRoomsCreateCommand())
	cmd.AddCommand(newRoomsUpdateCommand())
	cmd.AddCommand(newRoomsDeleteCommand())

	return cmd
}

var roomColumns = []catalog.Column[catalog.Room]{
	{Header: "Name", Width: 40, Value: func(r catalog.Room) string { return r.Name }},
	{Header: "ID", Value: func(r catalog.Room) string { return r.ID }},
	{Header: "Home", Value: func(r catalog.Room) string { return r.HomeID }},
	{Header: "Type", Value: func(r catalog.Room) string { return r.RoomTypeID }},
	{Header: "Floor", Value: func(r catalog.Room) string { return strconv.Itoa(r.Floor) }},
}

func newRoomsListCommand() *cobra.Command {
	var (
		flags listFlags
		home  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		Long:  "List rooms, optionally scoped to one home",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if home != "" {
				resolved, err := findHome(cmd.Context(), client, home)
				if err != nil {
					return err
				}

				flags.filters = withHomeFilter(flags.filters, resolved.ID)
			}

			return runListCommand(cmd, &flags, client.Rooms().List, roomColumns, "No rooms found")
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&home, "home", "", "restrict to one home (name or ID)")

	return cmd
}

func findRoom(ctx context.Context, client catalog.Client, nameOrID string) (*catalog.Room, error) {
	return findByNameOrID(ctx, client.Rooms(), nameOrID,
		func(r *catalog.Room) string { return r.Name }, catalog.ErrRoomNotFound)
}

func newRoomsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ROOM_NAME_OR_ID",
		Short: "Get room details",
		Long:  "Display detailed information about a specific room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			room, err := findRoom(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			return outputOne(room, renderRoomDetails)
		},
	}
}

func renderRoomDetails(room *catalog.Room) error {
	return renderDetails("Room details:", [][2]string{
		{"Name", room.Name},
		{"ID", room.ID},
		{"Home", room.HomeID},
		{"Room type", room.RoomTypeID},
		{"Floor", strconv.Itoa(room.Floor)},
		{"Images", strconv.Itoa(len(room.ImageURLs))},
		{"Created", room.CreatedAt.Format(dateTimeFormat)},
		{"Updated", room.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newRoomsCreateCommand() *cobra.Command {
	var (
		home, roomType, name string
		floor                int
		imageURLs            []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a room",
		Long:  "Create a new room within a home",
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

			resolvedType, err := findRoomType(ctx, client, roomType)
			if err != nil {
				return err
			}

			request := &catalog.RoomCreateRequest{
				HomeID:     resolvedHome.ID,
				RoomTypeID: resolvedType.ID,
				Name:       name,
				Floor:      floor,
				ImageURLs:  imageURLs,
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			room, err := client.Rooms().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create room: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created room '%s' with ID %s\n", room.Name, room.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&home, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&roomType, "type", "", "room type name or ID (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "room name (required)")
	cmd.Flags().IntVar(&floor, "floor", 0, "floor number")
	cmd.Flags().StringSliceVar(&imageURLs, "image", nil, "image URL (repeatable)")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomsUpdateCommand() *cobra.Command {
	var (
		roomType, name string
		floor          int
		imageURLs      []string
	)

	cmd := &cobra.Command{
		Use:   "update ROOM_NAME_OR_ID",
		Short: "Update a room",
		Long:  "Update an existing room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			room, err := findRoom(ctx, client, args[0])
			if err != nil {
				return err
			}

			request := &catalog.RoomUpdateRequest{}
			if cmd.Flags().Changed("type") {
				resolvedType, err := findRoomType(ctx, client, roomType)
				if err != nil {
					return err
				}

				request.RoomTypeID = &resolvedType.ID
			}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("floor") {
				request.Floor = &floor
			}

			if cmd.Flags().Changed("image") {
				request.ImageURLs = imageURLs
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			updated, err := client.Rooms().Update(ctx, room.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update room: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated room '%s'\n", updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&roomType, "type", "", "new room type name or ID")
	cmd.Flags().StringVar(&name, "name", "", "new room name")
	cmd.Flags().IntVar(&floor, "floor", 0, "new floor number")
	cmd.Flags().StringSliceVar(&imageURLs, "image", nil, "replacement image URL (repeatable)")

	return cmd
}

func newRoomsDeleteCommand() *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete ROOM_NAME_OR_ID",
		Short:      "Delete a room",
		Long:       "Delete a room. Inventory rows pinned to the room lose their room assignment.",
		EntityType: "room",
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			room, err := findRoom(ctx, client, nameOrID)
			if err != nil {
				return "", "", err
			}

			return room.ID, room.Name, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return client.Rooms().Delete(ctx, id)
		},
	})
}
