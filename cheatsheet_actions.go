package cheatsheets

import (
	"context"
	"fmt"
	"net/url"
)

// API paths, relative to <origin>/api.
const (
	cheatSheetsPath       = "/cheatsheets/"
	publicCheatSheetsPath = "/cheatsheets/public/"
)

func cheatSheetPath(id string) string {
	return cheatSheetsPath + url.PathEscape(id)
}

// ListCheatSheets returns the cheat sheets visible to the token's owner.
func (c *Client) ListCheatSheets(ctx context.Context, token string, opts ...ListOption) ([]CheatSheet, error) {
	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var filters *Filters
	if len(cfg.published) > 0 {
		filters = &Filters{IsPublishedList: cfg.published}
	}

	resp, err := c.Get(ctx, cheatSheetsPath, token, filters)
	if err != nil {
		return nil, err
	}

	var sheets []CheatSheet
	if err := resp.Decode(&sheets); err != nil {
		return nil, fmt.Errorf("decode cheat sheets: %w", err)
	}
	return sheets, nil
}

// ListPublicCheatSheets returns the published cheat sheets of all users.
func (c *Client) ListPublicCheatSheets(ctx context.Context) ([]CheatSheet, error) {
	resp, err := c.GetWithoutToken(ctx, publicCheatSheetsPath)
	if err != nil {
		return nil, err
	}

	var sheets []CheatSheet
	if err := resp.Decode(&sheets); err != nil {
		return nil, fmt.Errorf("decode cheat sheets: %w", err)
	}
	return sheets, nil
}

// CreateCheatSheet saves a new cheat sheet and returns its id.
func (c *Client) CreateCheatSheet(ctx context.Context, token string, sheet UnsavedCheatSheet) (string, error) {
	resp, err := c.Post(ctx, cheatSheetsPath, token, sheet)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateCheatSheet applies a partial update to the cheat sheet with the given id.
func (c *Client) UpdateCheatSheet(ctx context.Context, token, id string, update UpdateCheatSheet) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := c.Patch(ctx, cheatSheetPath(id), token, update)
	return err
}

// DeleteCheatSheet deletes the cheat sheet with the given id.
func (c *Client) DeleteCheatSheet(ctx context.Context, token, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := c.Delete(ctx, cheatSheetPath(id), token)
	return err
}
