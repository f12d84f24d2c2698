package sheets

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/cheatsheets/client-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete cheat sheets"
}

func (c *DeleteCommand) Help() string {
	return `Usage: cheatsheet delete [options] <id> [<id>...]

  Deletes each cheat sheet in turn. Every id is attempted; failures are
  reported together at the end.` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	c.ServerFlags(f)
	c.TokenFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() == 0 {
		ui.Error("at least one cheat sheet id is required")
		return 1
	}

	client, token, err := authenticatedClient(c.Command)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	var result *multierror.Error
	ctx := context.Background()
	for _, id := range flags.Args() {
		if err := client.DeleteCheatSheet(ctx, token, id); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", id, err))
			continue
		}
		logger.Info("deleted cheat sheet", "id", id)
	}

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(fmt.Sprintf("error deleting cheat sheets: %v", err))
		return 1
	}
	return 0
}
