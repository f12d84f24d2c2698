package cheatsheets

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const loginPath = "/login"

// Credentials are exchanged for a bearer token by Login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

// Token is the bearer credential returned by the login endpoint. The client
// never stores it; pass AccessToken to authenticated calls.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Token, error) {
	resp, err := c.PostWithoutToken(ctx, loginPath, creds)
	if err != nil {
		return nil, err
	}

	var token Token
	if err := resp.Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrMissingToken
	}
	return &token, nil
}
