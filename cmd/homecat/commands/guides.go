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

// guideCommandConfig describes one of the four guide command groups. The
// guide kinds share one entity shape and one CRUD surface; only the naming
// and the backing client differ.
type guideCommandConfig struct {
	use        string
	aliases    []string
	singular   string
	plural     string
	withAmenity bool
	client     func(catalog.Client) catalog.GuidesClient
}

// NewStylingGuidesCommand creates the styling-guides command group.
func NewStylingGuidesCommand() *cobra.Command {
	return newGuideCommand(guideCommandConfig{
		use:      "styling-guides",
		aliases:  []string{"styling-guide", "styling"},
		singular: "styling guide",
		plural:   "styling guides",
		client:   func(c catalog.Client) catalog.GuidesClient { return c.StylingGuides() },
	})
}

// NewPlaybooksCommand creates the playbooks command group.
func NewPlaybooksCommand() *cobra.Command {
	return newGuideCommand(guideCommandConfig{
		use:      "playbooks",
		aliases:  []string{"playbook"},
		singular: "playbook",
		plural:   "playbooks",
		client:   func(c catalog.Client) catalog.GuidesClient { return c.Playbooks() },
	})
}

// NewApplianceGuidesCommand creates the appliance-guides command group.
func NewApplianceGuidesCommand() *cobra.Command {
	return newGuideCommand(guideCommandConfig{
		use:        "appliance-guides",
		aliases:    []string{"appliance-guide", "appliances"},
		singular:   "appliance guide",
		plural:     "appliance guides",
		withAmenity: true,
		client:     func(c catalog.Client) catalog.GuidesClient { return c.ApplianceGuides() },
	})
}

// NewTechnicalPlansCommand creates the technical-plans command group.
func NewTechnicalPlansCommand() *cobra.Command {
	return newGuideCommand(guideCommandConfig{
		use:      "technical-plans",
		aliases:  []string{"technical-plan", "plans"},
		singular: "technical plan",
		plural:   "technical plans",
		client:   func(c catalog.Client) catalog.GuidesClient { return c.TechnicalPlans() },
	})
}

var guideColumns = []catalog.Column[catalog.Guide]{
	{Header: "Title", Width: 50, Value: func(g catalog.Guide) string { return g.Title }},
	{Header: "ID", Value: func(g catalog.Guide) string { return g.ID }},
	{Header: "Home", Value: func(g catalog.Guide) string { return g.HomeID }},
	{Header: "Updated", Value: func(g catalog.Guide) string { return g.UpdatedAt.Format(dateFormat) }},
}

func newGuideCommand(config guideCommandConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.use,
		Aliases: config.aliases,
		Short:   "Manage " + config.plural,
		Long:    fmt.Sprintf("List, create, update, and delete %s", config.plural),
	}

	cmd.AddCommand(newGuideListCommand(config))
	cmd.AddCommand(newGuideGetCommand(config))
	cmd.AddCommand(newGuideCreateCommand(config))
	cmd.AddCommand(newGuideUpdateCommand(config))
	cmd.AddCommand(newGuideDeleteCommand(config))

	return cmd
}

func newGuideListCommand(config guideCommandConfig) *cobra.Command {
	var (
		flags listFlags
		home  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + config.plural,
		Long:  fmt.Sprintf("List %s, optionally scoped to one home", config.plural),
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

			return runListCommand(cmd, &flags, config.client(client).List, guideColumns,
				fmt.Sprintf("No %s found", config.plural))
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&home, "home", "", "restrict to one home (name or ID)")

	return cmd
}

func findGuide(ctx context.Context, guidesClient catalog.GuidesClient, nameOrID string) (*catalog.Guide, error) {
	return findByNameOrID(ctx, guidesClient, nameOrID,
		func(g *catalog.Guide) string { return g.Title }, catalog.ErrGuideNotFound)
}

func newGuideGetCommand(config guideCommandConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "get TITLE_OR_ID",
		Short: fmt.Sprintf("Get %s details", config.singular),
		Long:  fmt.Sprintf("Display detailed information about a specific %s", config.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			guide, err := findGuide(cmd.Context(), config.client(client), args[0])
			if err != nil {
				return err
			}

			return outputOne(guide, renderGuideDetails)
		},
	}
}

func renderGuideDetails(guide *catalog.Guide) error {
	return renderDetails("Guide details:", [][2]string{
		{"Title", guide.Title},
		{"ID", guide.ID},
		{"Home", guide.HomeID},
		{"Amenity", valueOrNA(guide.AmenityID)},
		{"Body", valueOrNA(guide.Body)},
		{"Attachments", strconv.Itoa(len(guide.AttachmentURLs))},
		{"Created", guide.CreatedAt.Format(dateTimeFormat)},
		{"Updated", guide.UpdatedAt.Format(dateTimeFormat)},
	})
}

func newGuideCreateCommand(config guideCommandConfig) *cobra.Command {
	var (
		home, amenity, title, body string
		attachmentURLs             []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + config.singular,
		Long:  fmt.Sprintf("Create a new %s for a home", config.singular),
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

			request := &catalog.GuideCreateRequest{
				HomeID:         resolvedHome.ID,
				Title:          title,
				Body:           body,
				AttachmentURLs: attachmentURLs,
			}

			if amenity != "" {
				resolvedAmenity, err := findAmenity(ctx, client, amenity)
				if err != nil {
					return err
				}

				request.AmenityID = resolvedAmenity.ID
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			guide, err := config.client(client).Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", config.singular, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created %s '%s' with ID %s\n", config.singular, guide.Title, guide.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&home, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&title, "title", "", "guide title (required)")
	cmd.Flags().StringVar(&body, "body", "", "guide body")
	cmd.Flags().StringSliceVar(&attachmentURLs, "attachment", nil, "attachment URL (repeatable)")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("title")

	if config.withAmenity {
		cmd.Flags().StringVar(&amenity, "amenity", "", "the amenity this guide describes (name or ID)")
	}

	return cmd
}

func newGuideUpdateCommand(config guideCommandConfig) *cobra.Command {
	var (
		amenity, title, body string
		attachmentURLs       []string
	)

	cmd := &cobra.Command{
		Use:   "update TITLE_OR_ID",
		Short: "Update a " + config.singular,
		Long:  fmt.Sprintf("Update an existing %s", config.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			guide, err := findGuide(ctx, config.client(client), args[0])
			if err != nil {
				return err
			}

			request := &catalog.GuideUpdateRequest{}
			if cmd.Flags().Changed("title") {
				request.Title = &title
			}

			if cmd.Flags().Changed("body") {
				request.Body = &body
			}

			if cmd.Flags().Changed("attachment") {
				request.AttachmentURLs = attachmentURLs
			}

			if config.withAmenity && cmd.Flags().Changed("amenity") {
				resolvedAmenity, err := findAmenity(ctx, client, amenity)
				if err != nil {
					return err
				}

				request.AmenityID = &resolvedAmenity.ID
			}

			err = validate.Struct(request)
			if err != nil {
				return err
			}

			updated, err := config.client(client).Update(ctx, guide.ID, request)
			if err != nil {
				return fmt.Errorf("failed to update %s: %w", config.singular, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated %s '%s'\n", config.singular, updated.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new guide title")
	cmd.Flags().StringVar(&body, "body", "", "new guide body")
	cmd.Flags().StringSliceVar(&attachmentURLs, "attachment", nil, "replacement attachment URL (repeatable)")

	if config.withAmenity {
		cmd.Flags().StringVar(&amenity, "amenity", "", "new amenity reference (name or ID)")
	}

	return cmd
}

func newGuideDeleteCommand(config guideCommandConfig) *cobra.Command {
	return createDeleteCommand(DeleteConfig{
		Use:        "delete TITLE_OR_ID",
		Short:      "Delete a " + config.singular,
		Long:       fmt.Sprintf("Delete a %s", config.singular),
		EntityType: config.singular,
		GetResource: func(ctx context.Context, client catalog.Client, nameOrID string) (string, string, error) {
			guide, err := findGuide(ctx, config.client(client), nameOrID)
			if err != nil {
				return "", "", err
			}

			return guide.ID, guide.Title, nil
		},
		DeleteFunc: func(ctx context.Context, client catalog.Client, id string) error {
			return config.client(client).Delete(ctx, id)
		},
	})
}
