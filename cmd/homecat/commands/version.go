package commands

import (
	"github.com/spf13/cobra"
)

// VersionInfo describes the build stamped into the binary at release time.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the homecat CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := &VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			return outputOne(info, func(info *VersionInfo) error {
				return renderDetails("homecat:", [][2]string{
					{"Version", info.Version},
					{"Commit", info.Commit},
					{"Built", info.Built},
				})
			})
		},
	}
}
