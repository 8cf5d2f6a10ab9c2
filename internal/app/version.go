package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set from main via SetVersion (ldflags at release time).
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the biblioctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("biblioctl %s\n", version)
		},
	}
}
