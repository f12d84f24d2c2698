package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/cheatsheets/client-go/internal/cmd/base"
	"github.com/cheatsheets/client-go/internal/cmd/commands/login"
	"github.com/cheatsheets/client-go/internal/cmd/commands/project"
	"github.com/cheatsheets/client-go/internal/cmd/commands/sheets"
	"github.com/cheatsheets/client-go/internal/version"
)

// EnvLogLevel sets the log level of the command line client.
const EnvLogLevel = "CHEATSHEET_LOG_LEVEL"

// Commands returns the subcommands wired to the given logger, UI and client
// factory.
func Commands(log hclog.Logger, ui cli.Ui, newClient base.ClientFactory) map[string]cli.CommandFactory {
	b := func() *base.Command {
		c := base.New(log, ui)
		if newClient != nil {
			c.NewClient = newClient
		}
		return c
	}

	return map[string]cli.CommandFactory{
		"login": func() (cli.Command, error) {
			return &login.Command{Command: b()}, nil
		},
		"list": func() (cli.Command, error) {
			return &sheets.ListCommand{Command: b()}, nil
		},
		"public": func() (cli.Command, error) {
			return &sheets.PublicCommand{Command: b()}, nil
		},
		"create": func() (cli.Command, error) {
			return &sheets.CreateCommand{Command: b()}, nil
		},
		"update": func() (cli.Command, error) {
			return &sheets.UpdateCommand{Command: b()}, nil
		},
		"delete": func() (cli.Command, error) {
			return &sheets.DeleteCommand{Command: b()}, nil
		},
		"project": func() (cli.Command, error) {
			return &project.Command{Command: b()}, nil
		},
	}
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	return Run(args, os.Stdin, os.Stdout, os.Stderr)
}

// Run is Main with explicit streams.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cliName := "cheatsheet"
	if len(args) > 0 {
		cliName, args = args[0], args[1:]
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Level:  hclog.LevelFromString(os.Getenv(EnvLogLevel)),
		Output: stderr,
	})

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(stdin),
		Writer:      stdout,
		ErrorWriter: stderr,
	}

	c := &cli.CLI{
		Name:       cliName,
		Args:       args,
		Version:    version.Version,
		Commands:   Commands(log, ui, nil),
		HelpWriter: stderr,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}
