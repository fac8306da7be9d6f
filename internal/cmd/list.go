package cmd

import (
	"encoding/json"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/steam"
	"github.com/protonrun/protonrun/internal/ui"
)

// NewListCmd creates the list command.
func NewListCmd(cfg *config.Config, log *zerolog.Logger, fsys afero.Fs) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Proton installations found in the Steam libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := cfg.LibraryRoots()
			candidates := steam.Scan(fsys, roots)
			log.Debug().Int("count", len(candidates)).Strs("roots", roots).Msg("library scan")

			if jsonOutput {
				type entry struct {
					Name    string `json:"name"`
					Channel string `json:"channel"`
					Version string `json:"version,omitempty"`
					Path    string `json:"path"`
				}
				entries := make([]entry, 0, len(candidates))
				for _, c := range candidates {
					e := entry{Name: c.Name, Channel: string(c.Channel), Path: c.Dir}
					if c.Version != nil {
						e.Version = c.Version.String()
					}
					entries = append(entries, e)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(candidates) == 0 {
				ui.PrintWarning("no Proton installations found under %v", roots)
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Name", "Channel", "Version", "Path"}),
				tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)
			for _, c := range candidates {
				v := "-"
				if c.Version != nil {
					v = c.Version.String()
				}
				table.Append(c.Name, string(c.Channel), v, c.Dir)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}
