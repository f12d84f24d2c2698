package sheets

import (
	"context"
	"flag"
	"fmt"

	cheatsheets "github.com/cheatsheets/client-go"
	"github.com/cheatsheets/client-go/internal/cmd/base"
)

type UpdateCommand struct {
	*base.Command

	flagFile      string
	flagTitle     string
	flagPublished bool
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a cheat sheet"
}

func (c *UpdateCommand) Help() string {
	return `Usage: cheatsheet update [options] <id>

  Applies a partial update to the cheat sheet with the given id. Fields come
  from a JSON file, -title and -published; only the fields given are sent.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ContinueOnError))
	c.ServerFlags(f)
	c.TokenFlags(f)

	f.StringVar(&c.flagFile, "file", "", "Path to a JSON partial update.")
	f.StringVar(&c.flagTitle, "title", "", "New title.")
	f.BoolVar(&c.flagPublished, "published", false, "New publication state.")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("expected exactly one cheat sheet id")
		return 1
	}
	id := flags.Arg(0)

	var update cheatsheets.UpdateCheatSheet
	if c.flagFile != "" {
		if err := readJSONFile(c.flagFile, &update); err != nil {
			ui.Error(fmt.Sprintf("error reading update: %v", err))
			return 1
		}
	}
	if isFlagSet(flags, "title") {
		title := c.flagTitle
		update.Title = &title
	}
	if isFlagSet(flags, "published") {
		published := c.flagPublished
		update.IsPublished = &published
	}

	if err := update.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid update: %v", err))
		return 1
	}

	client, token, err := authenticatedClient(c.Command)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	if err := client.UpdateCheatSheet(context.Background(), token, id, update); err != nil {
		ui.Error(fmt.Sprintf("error updating cheat sheet %s: %v", id, err))
		return 1
	}

	logger.Info("updated cheat sheet", "id", id)
	return 0
}
