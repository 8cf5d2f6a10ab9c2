package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bookloft/biblioctl/internal/api"
	"github.com/bookloft/biblioctl/internal/util"
)

// promptLine reads a single line of input with a label.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing when attached to a
// terminal, falling back to plain input otherwise (pipes, CI).
func promptPassword(label string) (string, error) {
	if !util.IsTTY() {
		return promptLine(label)
	}
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the library server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = promptLine("Email"); err != nil {
					return err
				}
			}
			password, err := promptPassword("Password")
			if err != nil {
				return err
			}

			token, err := client.Login(cmd.Context(), api.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := sess.Login(token); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}
			ok("Logged in as %s", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.Logout(); err != nil {
				return err
			}
			ok("Logged out")
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var (
		name  string
		email string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name == "" {
				if name, err = promptLine("Name"); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = promptLine("Email"); err != nil {
					return err
				}
			}
			password, err := promptPassword("Password")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			err = client.Register(cmd.Context(), api.Registration{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			ok("Account created — check %s for a verification link", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	return cmd
}

func newVerifyEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email <token>",
		Short: "Confirm an account with the emailed verification token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.VerifyEmail(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
			ok("Email verified — you can log in now")
			return nil
		},
	}
}

func newForgotPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.ForgotPassword(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("forgot-password: %w", err)
			}
			ok("If the account exists, a reset link was sent to %s", args[0])
			return nil
		},
	}
}

func newResetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Set a new password using an emailed reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword("New password")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}
			if err := client.ResetPassword(cmd.Context(), args[0], password); err != nil {
				return fmt.Errorf("reset-password: %w", err)
			}
			ok("Password updated")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, found := sess.ExpiresAt()
			switch {
			case !found:
				fmt.Println("Not logged in.")
			case !sess.Valid():
				warn("Session expired at %s — run 'biblioctl login'", exp.Local().Format(time.RFC1123))
			default:
				ok("Session valid until %s", exp.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}
