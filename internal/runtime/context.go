// Package runtime provides application runtime context for Lifedash.
package runtime

import (
	"os"
	"sync"

	"github.com/manav03panchal/lifedash/internal/auth"
	"github.com/manav03panchal/lifedash/internal/config"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/output"
	"github.com/manav03panchal/lifedash/internal/session"
	"github.com/manav03panchal/lifedash/internal/state"
)

// SessionEnv overrides the session store path; ":memory:" keeps it in memory.
const SessionEnv = "LIFEDASH_SESSION"

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Formatter *output.Formatter

	sessionPath string
	sessionOnce sync.Once
	session     *session.Store
	sessionErr  error

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath  string
	SessionPath string
	InMemory    bool
	Format      output.Format
	ColorMode   output.ColorMode
	Debug       bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath:  config.DefaultPath(),
		SessionPath: session.DefaultPath(),
		InMemory:    false,
		Format:      output.FormatCLI,
		ColorMode:   output.ColorAuto,
		Debug:       false,
	}
}

// New creates a new runtime context. The session store is opened on first
// use.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv(SessionEnv); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.SessionPath = envPath
		}
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	path := opts.SessionPath
	if opts.InMemory {
		path = ""
	}

	return &Context{
		Config:      cfg,
		Formatter:   formatter,
		sessionPath: path,
		Debug:       opts.Debug,
	}, nil
}

// Session returns the client session store, opening it on first use.
func (c *Context) Session() (*session.Store, error) {
	c.sessionOnce.Do(func() {
		c.session, c.sessionErr = session.Open(c.sessionPath)
	})
	return c.session, c.sessionErr
}

// SaveSession persists a successful login.
func (c *Context) SaveSession(s *model.Session) error {
	store, err := c.Session()
	if err != nil {
		return err
	}
	if err := store.Save(s); err != nil {
		return WrapDiskFullError(err, "save session", c.sessionPath)
	}
	logging.LogOperation("session.save",
		logging.KeyUserID, s.User.ID,
		session.KeyAuthToken, s.Token)
	return nil
}

// AuthClient returns a client for the configured auth server.
func (c *Context) AuthClient() *auth.Client {
	return auth.NewClient(c.Config.Auth.ServerURL, c.Config.Auth.ClientTimeout)
}

// NewAggregator creates dashboard state tuned by the configuration.
func (c *Context) NewAggregator() (*state.Aggregator, error) {
	return state.New(state.Options{
		HoldDelay:    c.Config.Hold.Delay,
		HoldInterval: c.Config.Hold.Interval,
		WaterGoal:    c.Config.Dashboard.WaterGoal,
		StepsGoal:    c.Config.Dashboard.StepsGoal,
		SeedLedger:   true,
	})
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.session != nil {
		return c.session.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
