package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packfox/chanauth/internal/domain"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout <channel>",
		Short: "Remove stored credentials for a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channel := domain.NewChannel(args[0])
			if channel.CanonicalName() == "" {
				return fmt.Errorf("channel name is empty")
			}

			if err := app.service.Logout(cmd.Context(), channel); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.renderer.Success(
				fmt.Sprintf("Successfully removed credentials for %s", channel)))
			return nil
		},
	}
}
