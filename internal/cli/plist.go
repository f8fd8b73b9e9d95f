package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/arthur-debert/deeplink/pkg/plist"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newPlistCmd(a *app) *cobra.Command {
	var (
		identifier string
		check      string
	)

	cmd := &cobra.Command{
		Use:     "plist",
		Short:   MsgPlistShort,
		Long:    MsgPlistLong,
		GroupID: "links",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			scheme := a.cfg.Scheme

			if check == "" {
				doc, err := plist.URLTypes(scheme, identifier)
				if err != nil {
					return err
				}
				return r.RenderText("plist", doc)
			}

			data, err := afero.ReadFile(a.fs, check)
			if err != nil {
				code := errors.ErrFileAccess
				if os.IsNotExist(err) {
					code = errors.ErrFileNotFound
				}
				return errors.Wrapf(err, code, "failed to read %s", check).WithDetail("path", check)
			}
			schemes, err := plist.Schemes(data)
			if err != nil {
				return err
			}
			registers, err := plist.Registers(data, scheme)
			if err != nil {
				return err
			}

			if registers {
				return r.RenderText("check", fmt.Sprintf(MsgPlistRegisters, check, scheme))
			}
			if err := r.RenderText("check", fmt.Sprintf(MsgPlistNotRegisters, check, scheme, strings.Join(schemes, ", "))); err != nil {
				return err
			}
			return errors.Newf(errors.ErrNotFound, MsgErrNotRegisters, check, scheme).
				WithDetail("path", check).
				WithDetail("schemes", schemes)
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", MsgFlagIdentifier)
	cmd.Flags().StringVar(&check, "check", "", MsgFlagCheck)
	cmd.MarkFlagsMutuallyExclusive("identifier", "check")
	return cmd
}
