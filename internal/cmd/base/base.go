// Package base holds what every cheatsheet subcommand shares: the logger,
// the UI and the construction of an API client.
package base

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	cheatsheets "github.com/cheatsheets/client-go"
	"github.com/cheatsheets/client-go/internal/config"
)

// EnvToken is read when a command needs a token and -token is not set.
const EnvToken = "CHEATSHEET_TOKEN"

// ClientFactory builds an API client. An empty server means the origin is
// taken from the environment.
type ClientFactory func(server string, opts ...cheatsheets.Option) (*cheatsheets.Client, error)

// DefaultClientFactory uses the explicit server when given and falls back
// to PUBLIC_APP_SERVER otherwise.
func DefaultClientFactory(server string, opts ...cheatsheets.Option) (*cheatsheets.Client, error) {
	if server != "" {
		return cheatsheets.New(server, opts...)
	}
	return cheatsheets.NewFromEnvironment(opts...)
}

// Command is embedded by every subcommand.
type Command struct {
	Log       hclog.Logger
	UI        cli.Ui
	NewClient ClientFactory

	flagServer string
	flagConfig string
	flagToken  string
}

// New returns a Command with the default client factory.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:       log,
		UI:        ui,
		NewClient: DefaultClientFactory,
	}
}

// ServerFlags registers the -server and -config flags.
func (c *Command) ServerFlags(f *FlagSet) {
	f.StringVar(
		&c.flagServer, "server", "",
		"Server origin. Defaults to the PUBLIC_APP_SERVER environment variable.",
	)
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to a YAML config file providing server_url.",
	)
}

// TokenFlags registers the -token flag.
func (c *Command) TokenFlags(f *FlagSet) {
	f.StringVar(
		&c.flagToken, "token", "",
		"Bearer token. Defaults to the "+EnvToken+" environment variable.",
	)
}

// Client builds an API client for the configured server.
func (c *Command) Client() (*cheatsheets.Client, error) {
	factory := c.NewClient
	if factory == nil {
		factory = DefaultClientFactory
	}

	server := c.flagServer
	if server == "" && c.flagConfig != "" {
		cfg, err := config.Load(c.flagConfig, config.DefaultEnvFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		server = cfg.ServerURL
	}

	return factory(server, cheatsheets.WithLogger(c.Log.Named("api")))
}

// Token returns the -token flag value, or the environment fallback.
func (c *Command) Token() string {
	if c.flagToken != "" {
		return c.flagToken
	}
	return strings.TrimSpace(os.Getenv(EnvToken))
}
