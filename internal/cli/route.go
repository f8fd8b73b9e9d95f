package cli

import (
	"github.com/arthur-debert/deeplink/pkg/logging"
	"github.com/arthur-debert/deeplink/pkg/output"
	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		file string
		hold bool
	)

	cmd := &cobra.Command{
		Use:     "route [urls...]",
		Short:   MsgRouteShort,
		Long:    MsgRouteLong,
		Example: MsgRouteExample,
		GroupID: "links",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.route")
			defer logging.LogOperationStart(logger, "route")()

			links, err := a.links(cmd, args, file)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			d := a.dispatcher()
			var rep output.Report
			for _, link := range links {
				entry := output.Entry{Input: link}
				nav, pending, err := d.Handle(link)
				if err != nil {
					rep.Add(entry.WithError(err))
					continue
				}
				rep.Add(entry.WithNavigation(nav, pending))

				if !hold {
					if err := d.Finish(pending.ID); err != nil {
						return err
					}
				}
			}

			if err := r.Render(rep); err != nil {
				return err
			}
			return failuresError(rep)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	cmd.Flags().BoolVar(&hold, "hold", false, MsgFlagHold)
	return cmd
}
