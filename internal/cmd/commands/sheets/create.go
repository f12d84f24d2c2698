package sheets

import (
	"context"
	"flag"
	"fmt"

	cheatsheets "github.com/cheatsheets/client-go"
	"github.com/cheatsheets/client-go/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	flagFile      string
	flagTitle     string
	flagPublished bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a cheat sheet"
}

func (c *CreateCommand) Help() string {
	return `Usage: cheatsheet create [options]

  Creates a cheat sheet from a JSON file or from -title and prints its id.
  Flags override values read from the file.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.ServerFlags(f)
	c.TokenFlags(f)

	f.StringVar(&c.flagFile, "file", "", "Path to a JSON cheat sheet.")
	f.StringVar(&c.flagTitle, "title", "", "Cheat sheet title.")
	f.BoolVar(&c.flagPublished, "published", false, "Publish the cheat sheet.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var sheet cheatsheets.UnsavedCheatSheet
	if c.flagFile != "" {
		if err := readJSONFile(c.flagFile, &sheet); err != nil {
			ui.Error(fmt.Sprintf("error reading cheat sheet: %v", err))
			return 1
		}
	}
	if c.flagTitle != "" {
		sheet.Title = c.flagTitle
	}
	if isFlagSet(flags, "published") {
		sheet.IsPublished = c.flagPublished
	}

	if err := sheet.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid cheat sheet: %v", err))
		return 1
	}

	client, token, err := authenticatedClient(c.Command)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	id, err := client.CreateCheatSheet(context.Background(), token, sheet)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating cheat sheet: %v", err))
		return 1
	}

	logger.Info("created cheat sheet", "id", id, "title", sheet.Title)
	ui.Output(id)
	return 0
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(f *base.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
