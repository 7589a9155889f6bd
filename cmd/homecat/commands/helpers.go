// Package commands implements the homecat CLI command tree.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dwellhq/homecat/pkg/catalog"
	"github.com/dwellhq/homecat/pkg/catalogclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2

	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrConfirmationRequired = errors.New("confirmation required (re-run with --force in non-interactive mode)")
	ErrUnknownConfigKey     = errors.New("unknown config key")
)

// CreateClient builds a catalog client from the resolved CLI configuration
// (flags, environment, config file, in viper's precedence order).
func CreateClient(cmd *cobra.Command) (catalog.Client, error) {
	config := &catalog.Config{
		Endpoint: viper.GetString("api"),
		Token:    viper.GetString("token"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewLogger()
	}

	return catalogclient.New(cmd.Context(), config)
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// listFlags carries the pagination and filter flags shared by every list
// subcommand.
type listFlags struct {
	page     int
	pageSize int
	search   string
	sort     string
	filters  map[string]string
}

func addListFlags(cmd *cobra.Command, flags *listFlags) {
	cmd.Flags().IntVar(&flags.page, "page", catalog.DefaultPage, "page to fetch")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", catalog.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&flags.search, "search", "", "free-text search")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort expression (e.g. name, -createdAt)")
	cmd.Flags().StringToStringVar(&flags.filters, "filter", nil, "field filters (key=value)")
}

func (f *listFlags) query() *catalog.Query {
	query := catalog.NewQuery().WithPage(f.page).WithPageSize(f.pageSize)

	if f.search != "" {
		query.WithSearch(f.search)
	}

	if f.sort != "" {
		query.WithSort(f.sort)
	}

	for key, value := range f.filters {
		query.WithFilter(key, value)
	}

	return query
}

// runListCommand fetches one page through a loader and renders it in the
// requested output format.
func runListCommand[T any](cmd *cobra.Command, flags *listFlags, fetch catalog.ListFunc[T], columns []catalog.Column[T], emptyMsg string) error {
	loader := catalog.NewLoader(fetch)
	defer loader.Close()

	loader.SetQuery(flags.query())
	loader.Reload(cmd.Context())

	state := loader.Snapshot()
	if state.Err != "" {
		return errors.New(state.Err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(state.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(state.Data)
	default:
		table := catalog.NewTable(columns)
		table.UseServerMeta(state.Meta)
		table.SetRows(state.Data)
		table.SetEmptyMessage(emptyMsg)

		return table.Render(os.Stdout)
	}
}

// findByNameOrID resolves an entity by identifier first, then by searching
// for an exact name match.
func findByNameOrID[T, C, U any](
	ctx context.Context,
	resourceClient catalog.ResourceClient[T, C, U],
	nameOrID string,
	nameOf func(*T) string,
	notFound error,
) (*T, error) {
	resource, err := resourceClient.Get(ctx, nameOrID)
	if err == nil {
		return resource, nil
	}

	if !catalog.IsNotFound(err) {
		return nil, err
	}

	query := catalog.NewQuery().WithSearch(nameOrID)

	list, err := resourceClient.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching for '%s': %w", nameOrID, err)
	}

	for i := range list.Data {
		if nameOf(&list.Data[i]) == nameOrID {
			return &list.Data[i], nil
		}
	}

	return nil, fmt.Errorf("'%s': %w", nameOrID, notFound)
}

// outputOne renders a single entity in the requested output format.
func outputOne[T any](resource *T, renderTable func(*T) error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(resource)
	case OutputFormatYAML:
		return StandardYAMLRenderer(resource)
	default:
		return renderTable(resource)
	}
}

// renderDetails prints a Property/Value table for one entity.
func renderDetails(title string, pairs [][2]string) error {
	_, _ = os.Stdout.WriteString(title + "\n\n")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	for _, pair := range pairs {
		_ = table.Append(pair[0], pair[1])
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// DeleteConfig holds the configuration for delete commands.
type DeleteConfig struct {
	Use         string // e.g., "delete CATEGORY_NAME_OR_ID"
	Short       string // e.g., "Delete a category"
	Long        string // e.g., "Delete a category"
	EntityType  string // e.g., "category", "home", "supplier"
	GetResource func(ctx context.Context, client catalog.Client, nameOrID string) (id string, name string, err error)
	DeleteFunc  func(ctx context.Context, client catalog.Client, id string) error
}

// createDeleteCommand creates a generic delete command with a confirmation
// prompt. The prompt requires an interactive terminal; scripted callers pass
// --force instead.
func createDeleteCommand(config DeleteConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   config.Use,
		Short: config.Short,
		Long:  config.Long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nameOrID := args[0]

			if !force {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return fmt.Errorf("deleting %s '%s': %w", config.EntityType, nameOrID, ErrConfirmationRequired)
				}

				_, _ = fmt.Fprintf(os.Stdout, "Really delete %s '%s'? (y/N): ", config.EntityType, nameOrID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			resourceID, resourceName, err := config.GetResource(ctx, client, nameOrID)
			if err != nil {
				return err
			}

			err = config.DeleteFunc(ctx, client, resourceID)
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", config.EntityType, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted %s '%s'\n", config.EntityType, resourceName)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

// valueOrNA substitutes a placeholder for empty optional fields in detail
// tables.
func valueOrNA(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}
