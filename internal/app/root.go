package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookloft/biblioctl/internal/api"
	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/config"
	"github.com/bookloft/biblioctl/internal/log"
	"github.com/bookloft/biblioctl/internal/session"
	"github.com/bookloft/biblioctl/internal/util"
)

var (
	cfg    *config.Config
	sess   *session.Session
	client *api.Client
	store  *catalog.Store
	logger *zap.Logger

	flagNoColor bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "biblioctl",
	Short: "Manage your personal book library from the terminal",
	Long: `biblioctl is a client for a self-hosted book library server.

It tracks what you own, what you've read, and what you've lent out.
Books can be added by hand, imported by ISBN from Google Books, or
bulk-loaded from CSV.

Start with 'biblioctl register' and 'biblioctl login'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// A rejected token is stale; drop it so the next login starts clean.
		if errors.Is(err, api.ErrUnauthorized) && sess != nil {
			_ = sess.Logout()
			err = fmt.Errorf("%w — run 'biblioctl login'", err)
		}
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log HTTP requests to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/biblioctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)
		logger = log.New(flagVerbose)

		if flagConfig != "" {
			os.Setenv("BIBLIOCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		sess = session.Load(cfg.Defaults.TokenPath)
		client = api.New(cfg.API.BaseURL, sess, logger)
		store = catalog.NewStore(client)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterCmd(),
		newVerifyEmailCmd(),
		newForgotPasswordCmd(),
		newResetPasswordCmd(),
		newWhoamiCmd(),
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newImportCmd(),
		newScanCmd(),
		newSearchCmd(),
		newCoverCmd(),
		newMergeCmd(),
		newExportCmd(),
		newImportCSVCmd(),
		newStatsCmd(),
		newBrowseCmd(),
		newUsersCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

// requireSession guards commands that talk to authenticated endpoints;
// nothing goes on the wire when it fails. An expired token is removed
// so the next login starts clean.
func requireSession() error {
	if sess.Valid() {
		return nil
	}
	if _, found := sess.ExpiresAt(); found {
		_ = sess.Logout()
		return fmt.Errorf("session expired — run 'biblioctl login'")
	}
	return fmt.Errorf("not logged in — run 'biblioctl login'")
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
