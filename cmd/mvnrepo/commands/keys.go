package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mvnrepo/internal/core/domain"
)

func (c *CLI) newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [name]",
		Short: "Print the property keys a repository is read from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.None[string]()
			if len(args) == 1 {
				if err := domain.ValidateRepoName(args[0]); err != nil {
					return err
				}
				name = domain.Some(args[0])
			}

			for _, key := range domain.KeysFor(name).All() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
