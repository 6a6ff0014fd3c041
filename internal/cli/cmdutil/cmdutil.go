// Package cmdutil holds the plumbing shared by every blox subcommand:
// loading the configuration, selecting an account, building an API client
// and printing object trees in the requested format
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/config"
	"github.com/aryankumar/blox/internal/object"
	"github.com/aryankumar/blox/internal/output"
	"github.com/aryankumar/blox/internal/util"
	"github.com/aryankumar/blox/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Session is the loaded configuration plus the selected account
type Session struct {
	Config  *config.Manager
	Account config.Account
	Client  *api.Client
}

// LoadConfig reads the configuration file named by --config, or the default one
func LoadConfig() (*config.Manager, error) {
	mgr := config.NewManager(viper.GetString("config"))
	if _, err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr, nil
}

// NewSession loads the configuration and builds a client for the account
// selected with --account (the first configured account by default)
func NewSession() (*Session, error) {
	mgr, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	account, err := mgr.FindAccount(viper.GetString("account"))
	if err != nil {
		return nil, err
	}

	slog.Debug("using account", "account", account.Name)

	return &Session{
		Config:  mgr,
		Account: account,
		Client:  NewClient(mgr, account.Cookie),
	}, nil
}

// NewAnonymousSession loads the configuration and builds a client that
// uses the selected account when one exists and no cookie otherwise
func NewAnonymousSession() (*Session, error) {
	mgr, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	account, err := mgr.FindAccount(viper.GetString("account"))
	if err != nil && !errors.Is(err, util.ErrNoAccounts) {
		return nil, err
	}

	return &Session{
		Config:  mgr,
		Account: account,
		Client:  NewClient(mgr, account.Cookie),
	}, nil
}

// NewClient builds an API client for cookie honouring --timeout and --api-url
func NewClient(mgr *config.Manager, cookie string) *api.Client {
	opts := []api.Option{
		api.WithTimeout(Timeout(mgr)),
		api.WithLogger(slog.Default()),
		api.WithUserAgent(version.Get().UserAgent()),
	}
	if base := viper.GetString("api-url"); base != "" {
		opts = append(opts, api.WithBaseURL(base))
	}
	return api.NewClient(cookie, opts...)
}

// Timeout returns --timeout when given, otherwise the configured default
func Timeout(mgr *config.Manager) time.Duration {
	if viper.IsSet("timeout") || mgr == nil {
		return viper.GetDuration("timeout")
	}
	if d := mgr.GetConfig().Defaults.Timeout; d > 0 {
		return d
	}
	return viper.GetDuration("timeout")
}

// Parallel returns --parallel when given, otherwise the configured default
func Parallel(mgr *config.Manager) int {
	if viper.IsSet("parallel") || mgr == nil {
		return viper.GetInt("parallel")
	}
	if n := mgr.GetConfig().Defaults.Parallel; n > 0 {
		return n
	}
	return viper.GetInt("parallel")
}

// Formatter builds the formatter selected with the output flags, falling
// back to the configured defaults
func Formatter(mgr *config.Manager) (output.Formatter, error) {
	name := viper.GetString("output")
	depth := viper.GetInt("depth")
	var currency string
	if mgr != nil {
		defaults := mgr.GetConfig().Defaults
		if name == "" {
			name = defaults.OutputFormat
		}
		if !viper.IsSet("depth") {
			depth = defaults.MaxDepth
		}
		currency = defaults.Currency
	}

	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, util.NewValidationError("output", name, err.Error())
	}
	if depth < 0 {
		return nil, util.NewValidationError("depth", depth, "must not be negative")
	}

	return output.NewFormatter(format,
		output.WithNoColor(noColor(mgr)),
		output.WithForceColor(viper.GetBool("force-color")),
		output.WithNoHeaders(viper.GetBool("no-headers")),
		output.WithDepth(depth),
		output.WithCurrency(currency),
	), nil
}

// Colors returns the color scheme for short messages written to w
func Colors(w io.Writer, mgr *config.Manager) *output.ColorScheme {
	if noColor(mgr) {
		return output.NewColorScheme(w, true)
	}
	if viper.GetBool("force-color") {
		return output.ForcedColorScheme()
	}
	return output.NewColorScheme(w, false)
}

// noColor reports whether --no-color or the configured default disables color
func noColor(mgr *config.Manager) bool {
	if viper.GetBool("no-color") {
		return true
	}
	return mgr != nil && mgr.GetConfig().Defaults.NoColor
}

// Print writes obj to the command's output in the selected format
func Print(cmd *cobra.Command, mgr *config.Manager, obj object.Object) error {
	formatter, err := Formatter(mgr)
	if err != nil {
		return err
	}
	return formatter.Format(cmd.OutOrStdout(), obj)
}

// ParseID parses a numeric platform id
func ParseID(kind, arg string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 64)
	if err != nil || id == 0 {
		return 0, util.NewValidationError(kind, arg, "must be a positive number")
	}
	return id, nil
}

// UserOrSelf returns id, or the authenticated user's id when id is zero
func UserOrSelf(ctx context.Context, client *api.Client, id uint64) (uint64, error) {
	if id != 0 {
		return id, nil
	}
	if !client.Authenticated() {
		return 0, util.ErrNoAccounts
	}
	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("looking up the authenticated user: %w", err)
	}
	return user.ID, nil
}

// PageFlags are the pagination flags shared by listing commands
type PageFlags struct {
	Cursor string
	Limit  int
	Sort   string
}

// AddPageFlags registers --cursor, --limit and --sort on cmd
func AddPageFlags(cmd *cobra.Command, flags *PageFlags, defaultLimit int) {
	cmd.Flags().StringVar(&flags.Cursor, "cursor", "", "page cursor from a previous listing")
	cmd.Flags().IntVar(&flags.Limit, "limit", defaultLimit, "page size (10, 25, 50 or 100)")
	cmd.Flags().StringVar(&flags.Sort, "sort", "", "sort order (asc or desc)")
}

// Page converts the flags into an api.Page
func (f PageFlags) Page() (api.Page, error) {
	if f.Limit < 0 {
		return api.Page{}, util.NewValidationError("limit", f.Limit, "must not be negative")
	}

	page := api.Page{Cursor: f.Cursor, Limit: f.Limit}
	if f.Sort != "" {
		sort, ok := api.ParseSortOrder(f.Sort)
		if !ok {
			return api.Page{}, util.NewValidationError("sort", f.Sort, "must be asc or desc")
		}
		page.Sort = sort
	}
	return page, nil
}
