package cli

import (
	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/logging"
	"github.com/arthur-debert/deeplink/pkg/output"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		file   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "parse [urls...]",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		Example: MsgParseExample,
		GroupID: "links",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.parse")
			defer logging.LogOperationStart(logger, "parse")()

			links, err := a.links(cmd, args, file)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			interp := a.interpreter()
			var rep output.Report
			for _, link := range links {
				res, ok, err := interp.InterpretString(link)
				if err == nil && !ok && strict {
					err = deeplink.NoAction()
				}
				logger.Debug().
					Str("url", link).
					Bool("matched", ok).
					AnErr("error", err).
					Msg("Link interpreted")
				rep.Add(output.NewEntry(link, res, ok, err))
			}

			if err := r.Render(rep); err != nil {
				return err
			}
			if strict {
				return failuresError(rep)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}
