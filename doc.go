// Package cheatsheets provides a Go client for the cheat sheet API.
//
// Every call is a single HTTP round trip against <origin>/api<path>. Requests
// carry "Content-Type: application/json" and, for authenticated calls, an
// "Authorization: Bearer <token>" header built from the token the caller
// passes in. Only HTTP 200 is treated as success; any other status is
// returned as an [*APIError] whose message is the server's status text.
//
// Basic usage:
//
//	client, err := cheatsheets.NewFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := client.Login(ctx, cheatsheets.Credentials{
//	    Username: "ada",
//	    Password: "secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sheets, err := client.ListCheatSheets(ctx, token.AccessToken,
//	    cheatsheets.WithPublished(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range sheets {
//	    fmt.Println(s.ID, s.Title)
//	}
package cheatsheets
