package sheets

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	cheatsheets "github.com/cheatsheets/client-go"
	"github.com/cheatsheets/client-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagPublished string
}

func (c *ListCommand) Synopsis() string {
	return "List your cheat sheets"
}

func (c *ListCommand) Help() string {
	return `Usage: cheatsheet list [options]

  Prints the cheat sheets owned by the token's user as JSON.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	c.ServerFlags(f)
	c.TokenFlags(f)

	f.StringVar(
		&c.flagPublished, "published", "",
		`Comma-separated publication states to include, e.g. "true" or "true,false".`,
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	states, err := parseStates(c.flagPublished)
	if err != nil {
		ui.Error(fmt.Sprintf("invalid -published value: %v", err))
		return 1
	}

	client, token, err := authenticatedClient(c.Command)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	sheets, err := client.ListCheatSheets(context.Background(), token,
		cheatsheets.WithPublished(states...))
	if err != nil {
		ui.Error(fmt.Sprintf("error listing cheat sheets: %v", err))
		return 1
	}

	if err := printJSON(ui, sheets); err != nil {
		ui.Error(fmt.Sprintf("error encoding cheat sheets: %v", err))
		return 1
	}
	return 0
}

// parseStates parses a comma-separated list of booleans. An empty string
// yields no states.
func parseStates(s string) ([]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var states []bool
	for _, part := range strings.Split(s, ",") {
		b, err := strconv.ParseBool(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", part)
		}
		states = append(states, b)
	}
	return states, nil
}

type PublicCommand struct {
	*base.Command
}

func (c *PublicCommand) Synopsis() string {
	return "List published cheat sheets"
}

func (c *PublicCommand) Help() string {
	return `Usage: cheatsheet public [options]

  Prints every published cheat sheet as JSON. No token is needed.` + c.Flags().Help()
}

func (c *PublicCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("public", flag.ContinueOnError))
	c.ServerFlags(f)
	return f
}

func (c *PublicCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	sheets, err := client.ListPublicCheatSheets(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error listing cheat sheets: %v", err))
		return 1
	}

	if err := printJSON(ui, sheets); err != nil {
		ui.Error(fmt.Sprintf("error encoding cheat sheets: %v", err))
		return 1
	}
	return 0
}
