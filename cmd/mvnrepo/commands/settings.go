package commands

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

const settingsFilePerm = 0o600

func (c *CLI) newSettingsCmd() *cobra.Command {
	var src sourceOptions
	var out string

	cmd := &cobra.Command{
		Use:   "settings [names...]",
		Short: "Write a Maven settings.xml for the configured repositories",
		Long: "Resolves the named repositories, or those declared in mvnrepo.yaml, " +
			"or the unnamed repository, and writes them as a Maven settings.xml.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := c.invocation(args, &src)

			if out == "" {
				return c.app.WriteSettings(cmd.Context(), inv, cmd.OutOrStdout())
			}

			// Render fully before touching the file so a failure leaves it intact.
			var buf bytes.Buffer
			if err := c.app.WriteSettings(cmd.Context(), inv, &buf); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), settingsFilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write settings file"), "path", out)
			}
			return nil
		},
	}

	bindSourceFlags(cmd.Flags(), &src)
	cmd.Flags().StringVar(&out, "out", "", "Write settings.xml to this file instead of stdout")
	return cmd
}
