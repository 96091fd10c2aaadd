package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packfox/chanauth/internal/application"
	"github.com/packfox/chanauth/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status [<channel>]",
		Short: "Show configured channels and their login state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := app.service.Status(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				statuses = filterByChannel(statuses, domain.NewChannel(args[0]).CanonicalName())
			}

			if asJSON {
				encoded, err := json.MarshalIndent(statuses, "", "  ")
				if err != nil {
					return fmt.Errorf("encode status: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.renderer.StatusView(statuses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output status as JSON")

	return cmd
}

func filterByChannel(statuses []application.ChannelStatus, channelName string) []application.ChannelStatus {
	filtered := make([]application.ChannelStatus, 0, 1)
	for _, status := range statuses {
		if status.Channel == channelName {
			filtered = append(filtered, status)
		}
	}
	return filtered
}
