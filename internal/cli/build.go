package cli

import (
	"strings"

	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/logging"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "build <host> [name=value|name ...]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "links",
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var hosts []string
			for _, action := range deeplink.Actions() {
				hosts = append(hosts, string(action))
			}
			return hosts, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.build")

			u, err := a.interpreter().BuildURL(args[0], parseParamArgs(args[1:]))
			if err != nil {
				return err
			}
			logger.Debug().Str("url", u.String()).Msg("Link built")

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderURL(u.String())
		},
	}
}

// parseParamArgs turns name=value arguments into parameters. A bare name
// has no value.
func parseParamArgs(args []string) []deeplink.QueryParameter {
	params := make([]deeplink.QueryParameter, 0, len(args))
	for _, arg := range args {
		if name, value, found := strings.Cut(arg, "="); found {
			params = append(params, deeplink.Param(name, value))
		} else {
			params = append(params, deeplink.NameOnly(arg))
		}
	}
	return params
}
