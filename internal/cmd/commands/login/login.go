package login

import (
	"context"
	"flag"
	"fmt"

	cheatsheets "github.com/cheatsheets/client-go"
	"github.com/cheatsheets/client-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagUsername string
	flagPassword string
}

func (c *Command) Synopsis() string {
	return "Exchange credentials for a bearer token"
}

func (c *Command) Help() string {
	return `Usage: cheatsheet login -username=<name> [-password=<password>]

  Logs in and prints the access token. When -password is omitted it is
  read from the terminal.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("login", flag.ContinueOnError))
	c.ServerFlags(f)

	f.StringVar(&c.flagUsername, "username", "", "(Required) Account name.")
	f.StringVar(&c.flagPassword, "password", "", "Account password.")

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagPassword == "" {
		password, err := ui.AskSecret("Password:")
		if err != nil {
			ui.Error(fmt.Sprintf("error reading password: %v", err))
			return 1
		}
		c.flagPassword = password
	}

	creds := cheatsheets.Credentials{
		Username: c.flagUsername,
		Password: c.flagPassword,
	}
	if err := creds.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid credentials: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	token, err := client.Login(context.Background(), creds)
	if err != nil {
		ui.Error(fmt.Sprintf("error logging in: %v", err))
		return 1
	}

	logger.Debug("logged in", "username", creds.Username, "token_type", token.TokenType)
	ui.Output(token.AccessToken)
	return 0
}
