// Package launch starts the desktop player for a game
package launch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	// soberAppID is the flatpak id of the Linux player
	soberAppID = "org.vinegarhq.Sober"

	// soberCookiePath is where Sober reads its session cookie, relative to $HOME
	soberCookiePath = ".var/app/org.vinegarhq.Sober/data/sober/cookies"

	placeLauncherURL = "https://www.roblox.com/Game/PlaceLauncher.ashx"
)

// Join describes which server to join
type Join struct {
	PlaceID uint64

	// JobID selects a specific running server
	JobID string

	// LinkCode joins a private server
	LinkCode string
}

// URI returns the roblox-player: URI that asks the player to join
func (j Join) URI() string {
	launcher := placeLauncherURL +
		"?request=RequestGame" +
		"&browserTrackerId=0" +
		"&placeId=" + strconv.FormatUint(j.PlaceID, 10) +
		"&isPlayTogetherGame=false" +
		"&joinAttemptOrigin=PlayButton"
	if j.JobID != "" {
		launcher += "&gameId=" + j.JobID
	}
	if j.LinkCode != "" {
		launcher += "&linkCode=" + j.LinkCode
	}

	return strings.Join([]string{
		"roblox-player:1",
		"launchmode:play",
		"gameinfo:",
		"launchtime:0",
		"placelauncherurl:" + url.QueryEscape(launcher),
		"baseUrl:https://www.roblox.com/",
		"channel:",
		"robloxLocale:en_us",
		"gameLocale:en_us",
		"launchexp:InApp",
	}, "+")
}

// Runner executes external commands
type Runner interface {
	// Output runs a command and returns its standard output
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run runs a command to completion
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Launcher opens launch URIs with the platform's URL handler
type Launcher struct {
	runner Runner
	home   string
	goos   string
	logger *slog.Logger
}

// Option configures a Launcher
type Option func(*Launcher)

// WithRunner replaces the command runner
func WithRunner(r Runner) Option {
	return func(l *Launcher) {
		l.runner = r
	}
}

// WithHome overrides the home directory used for the Sober cookie file
func WithHome(home string) Option {
	return func(l *Launcher) {
		l.home = home
	}
}

// WithOS overrides the detected operating system
func WithOS(goos string) Option {
	return func(l *Launcher) {
		l.goos = goos
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Launcher for the current platform
func New(opts ...Option) *Launcher {
	home, _ := os.UserHomeDir()
	l := &Launcher{
		runner: execRunner{},
		home:   home,
		goos:   runtime.GOOS,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch joins a game as the account owning cookie
func (l *Launcher) Launch(ctx context.Context, cookie string, join Join) error {
	if l.goos == "linux" {
		if err := l.prepareSober(ctx, cookie); err != nil {
			return err
		}
	}

	name, args := l.opener(join.URI())
	l.logger.Debug("opening launch uri", "opener", name, "place", join.PlaceID)
	if err := l.runner.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("launching player with %s: %w", name, err)
	}
	return nil
}

// opener returns the command that opens uri on the launcher's platform
func (l *Launcher) opener(uri string) (string, []string) {
	switch l.goos {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

// prepareSober hands the session to the Sober player, which does not read
// the cookie from the launch URI
func (l *Launcher) prepareSober(ctx context.Context, cookie string) error {
	out, err := l.runner.Output(ctx, "xdg-mime", "query", "default", "x-scheme-handler/https")
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			l.logger.Debug("xdg-mime unavailable, skipping Sober setup", "error", err)
			return nil
		}
		return fmt.Errorf("querying default browser: %w", err)
	}

	if !strings.HasPrefix(strings.TrimSpace(string(out)), soberAppID) {
		return nil
	}

	if l.home == "" {
		return errors.New("cannot locate home directory for the Sober cookie file")
	}

	path := filepath.Join(l.home, soberCookiePath)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating Sober data directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(".ROBLOSECURITY="+cookie), 0600); err != nil {
		return fmt.Errorf("writing Sober cookie file: %w", err)
	}

	l.logger.Debug("wrote Sober cookie file", "path", path)
	return nil
}
