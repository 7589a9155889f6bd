package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dwellhq/homecat/internal/events"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var (
		natsURL string
		reload  bool
	)

	cmd := &cobra.Command{
		Use:   "watch [KIND...]",
		Short: "Stream catalog change events",
		Long: `Subscribe to catalog change events over NATS and print them as they
arrive. Without arguments, all entity kinds are watched. With --reload, the
affected kind's first page is re-fetched and rendered after each event, so
the terminal always shows authoritative state rather than event payloads.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := make([]catalog.Kind, 0, len(args))
			for _, arg := range args {
				kind, err := catalog.ParseKind(arg)
				if err != nil {
					return err
				}

				kinds = append(kinds, kind)
			}

			return runWatchCommand(cmd, kinds, natsURL, reload)
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS server URL (default from config or "+nats.DefaultURL+")")
	cmd.Flags().BoolVar(&reload, "reload", false, "re-fetch and render the affected kind after each event")

	return cmd
}

func runWatchCommand(cmd *cobra.Command, kinds []catalog.Kind, natsURL string, reload bool) error {
	if natsURL == "" {
		natsURL = viper.GetString("nats")
	}

	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	var logger catalog.Logger
	if viper.GetBool("verbose") {
		logger = NewLogger()
	}

	watcher, err := events.NewNATSWatcher(natsURL, logger)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	var reloaders map[catalog.Kind]func(context.Context) error

	if reload {
		client, err := CreateClient(cmd)
		if err != nil {
			return err
		}

		reloaders = buildReloaders(client)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := func(event catalog.Event) {
		_, _ = fmt.Fprintf(os.Stdout, "%s %s %s\n", event.Kind, event.Action, event.ID)

		if reloader, ok := reloaders[event.Kind]; ok {
			err := reloader(ctx)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			}
		}
	}

	err = watcher.Watch(kinds, handler)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stderr, "Watching for catalog events. Press Ctrl+C to stop.")

	<-ctx.Done()

	return nil
}

// kindReloader builds a reload callback holding one loader for the kind. The
// loader keeps its last committed page across events, so a failed refetch
// never blanks the rendered table.
func kindReloader[T any](fetch catalog.ListFunc[T], columns []catalog.Column[T]) func(context.Context) error {
	loader := catalog.NewLoader(fetch)

	return func(ctx context.Context) error {
		loader.Reload(ctx)

		state := loader.Snapshot()
		if state.Err != "" {
			return errors.New(state.Err)
		}

		table := catalog.NewTable(columns)
		table.UseServerMeta(state.Meta)
		table.SetRows(state.Data)

		return table.Render(os.Stdout)
	}
}

func buildReloaders(client catalog.Client) map[catalog.Kind]func(context.Context) error {
	return map[catalog.Kind]func(context.Context) error{
		catalog.KindCategories:      kindReloader(client.Categories().List, categoryColumns),
		catalog.KindBrands:          kindReloader(client.Brands().List, brandColumns),
		catalog.KindHomes:           kindReloader(client.Homes().List, homeColumns),
		catalog.KindRoomTypes:       kindReloader(client.RoomTypes().List, roomTypeColumns),
		catalog.KindSuppliers:       kindReloader(client.Suppliers().List, supplierColumns),
		catalog.KindAmenities:       kindReloader(client.Amenities().List, amenityColumns),
		catalog.KindRooms:           kindReloader(client.Rooms().List, roomColumns),
		catalog.KindInventory:       kindReloader(client.Inventory().List, inventoryColumns),
		catalog.KindStylingGuides:   kindReloader(client.StylingGuides().List, guideColumns),
		catalog.KindPlaybooks:       kindReloader(client.Playbooks().List, guideColumns),
		catalog.KindApplianceGuides: kindReloader(client.ApplianceGuides().List, guideColumns),
		catalog.KindTechnicalPlans:  kindReloader(client.TechnicalPlans().List, guideColumns),
	}
}
