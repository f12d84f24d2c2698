package sheets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	cheatsheets "github.com/cheatsheets/client-go"
	"github.com/cheatsheets/client-go/internal/cmd/base"
)

// printJSON writes v as indented JSON to the UI's output.
func printJSON(ui cli.Ui, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	ui.Output(string(data))
	return nil
}

// readJSONFile decodes the file at path into v, rejecting unknown fields.
func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

// authenticatedClient builds a client and resolves the token. An empty
// token is still sent, so the server decides how to answer.
func authenticatedClient(c *base.Command) (*cheatsheets.Client, string, error) {
	client, err := c.Client()
	if err != nil {
		return nil, "", err
	}

	token := c.Token()
	if token == "" {
		c.Log.Warn("no token given, sending an empty bearer token",
			"hint", "set -token or "+base.EnvToken)
	}
	return client, token, nil
}
