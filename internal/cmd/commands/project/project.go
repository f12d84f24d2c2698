package project

import (
	"bytes"
	"fmt"

	"github.com/cheatsheets/client-go/internal/cmd/base"
	"github.com/cheatsheets/client-go/internal/views"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the project page"
}

func (c *Command) Help() string {
	return `Usage: cheatsheet project

  Writes the static project page as HTML to standard output.`
}

func (c *Command) Run(args []string) int {
	var buf bytes.Buffer
	if err := views.RenderProject(&buf); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering project page: %v", err))
		return 1
	}
	c.UI.Output(buf.String())
	return 0
}
