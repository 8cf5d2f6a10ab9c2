package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/util"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users [id]",
		Short: "List accounts on the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			if len(args) == 1 {
				u, err := client.GetUser(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("fetching user: %w", err)
				}
				header("%s", u.Name)
				fmt.Printf("  %-10s %s\n", "Email", u.Email)
				fmt.Printf("  %-10s %s\n", "Role", orDash(u.Role))
				fmt.Printf("  %-10s %s\n", "Created", orDash(u.CreatedAt))
				fmt.Printf("  %-10s %s\n", "ID", u.ID)
				return nil
			}

			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}
			if len(users) == 0 {
				fmt.Println("No users.")
				return nil
			}

			header("%-26s  %-30s  %-10s  %s", "NAME", "EMAIL", "ROLE", "CREATED")
			for _, u := range users {
				fmt.Printf("%-26s  %-30s  %-10s  %s\n",
					util.TruncateText(u.Name, 26),
					util.TruncateText(u.Email, 30),
					orDash(u.Role),
					orDash(u.CreatedAt))
			}
			return nil
		},
	}
	return cmd
}
