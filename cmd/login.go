package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/packfox/chanauth/internal/application"
	"github.com/packfox/chanauth/internal/auth"
	"github.com/packfox/chanauth/internal/domain"
)

// flagRequestedSentinel marks a flag given without an attached value, e.g.
// bare --username. The manager prompts for the value in that case.
const flagRequestedSentinel = "\x00requested"

func newLoginCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <channel>",
		Short: "Store credentials for a channel",
		Long:  "Store credentials for a channel in the system keychain and record the authentication scheme in the channels file. Values omitted from the flags are prompted for interactively.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channel := domain.NewChannel(args[0])
			if channel.CanonicalName() == "" {
				return fmt.Errorf("channel name is empty")
			}

			overrides, provided := loginOverrides(cmd.Flags())

			result, err := app.service.Login(cmd.Context(), channel, overrides, provided)

			var partial application.PartialLoginError
			if err == nil || errors.As(err, &partial) {
				fmt.Fprintln(cmd.OutOrStdout(), app.renderer.Success(
					fmt.Sprintf("Successfully stored credentials for %s (%s)", channel, result.AuthType)))
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringP("username", "u", "", "Username for basic authentication (prompted when given without a value)")
	flags.StringP("password", "p", "", "Password for basic authentication")
	flags.StringP("token", "t", "", "Token for token authentication (prompted when given without a value)")
	flags.StringP("auth", "a", "", "Authentication scheme to use (basic, oauth2 or token)")

	// Bare --username and --token are accepted; the value is prompted for.
	flags.Lookup("username").NoOptDefVal = flagRequestedSentinel
	flags.Lookup("token").NoOptDefVal = flagRequestedSentinel

	cmd.MarkFlagsMutuallyExclusive("username", "token")
	cmd.MarkFlagsMutuallyExclusive("password", "token")

	return cmd
}

// loginOverrides turns the login flags into settings overrides plus the
// record of which credential flags were explicitly given. A flag given
// without a value counts as given but contributes no setting.
func loginOverrides(flags *pflag.FlagSet) (domain.ChannelSettings, auth.Provided) {
	overrides := domain.ChannelSettings{}

	username := flagOption(flags, "username")
	password := flagOption(flags, "password")
	token := flagOption(flags, "token")

	if value, ok := username.Value(); ok {
		overrides[domain.SettingUsername] = value
	}
	if value, ok := password.Value(); ok {
		overrides[domain.SettingPassword] = value
	}
	if value, ok := token.Value(); ok {
		overrides[domain.SettingToken] = value
	}
	if value, _ := flags.GetString("auth"); value != "" {
		overrides[domain.SettingAuth] = value
	}

	return overrides, auth.Provided{
		Username: username.Provided(),
		Password: password.Provided(),
		Token:    token.Provided(),
	}
}

func flagOption(flags *pflag.FlagSet, name string) domain.Option {
	if !flags.Changed(name) {
		return domain.UnsetOption()
	}

	value, _ := flags.GetString(name)
	if value == flagRequestedSentinel {
		return domain.RequestedOption()
	}

	return domain.ValueOption(value)
}
