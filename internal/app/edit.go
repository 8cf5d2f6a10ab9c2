package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "edit <id|isbn>",
		Short: "Update fields on an existing book",
		Long: `Update a book. Only the flags you pass change; everything
else keeps its current value. Passing an empty value clears a field,
e.g. --lent-to "" when a book comes back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}

			if err := flags.apply(cmd, &b); err != nil {
				return err
			}
			if err := client.UpdateBook(cmd.Context(), b.ID, b); err != nil {
				return fmt.Errorf("updating book: %w", err)
			}
			if err := store.Replace(b.ID, b); err != nil {
				return err
			}
			ok("Updated %q", b.Title)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
