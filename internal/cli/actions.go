package cli

import (
	"github.com/arthur-debert/deeplink/pkg/output"
	"github.com/spf13/cobra"
)

func newActionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "actions",
		Short:   MsgActionsShort,
		GroupID: "links",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := output.NewCatalog(a.interpreter())
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderCatalog(catalog)
		},
	}
}
