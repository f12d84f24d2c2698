package cheatsheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestListCheatSheets(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/cheatsheets/" {
			t.Errorf("path = %s, want /api/cheatsheets/", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %s, want Bearer tok", r.Header.Get("Authorization"))
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %s, want none", r.URL.RawQuery)
		}
		w.Write([]byte(`[{"id":"1","title":"Go","cells":[{"cell_type":"code","value":"go run ."}],"is_published":true}]`))
	})

	sheets, err := client.ListCheatSheets(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListCheatSheets() error = %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("len(sheets) = %d, want 1", len(sheets))
	}
	s := sheets[0]
	if s.ID != "1" || s.Title != "Go" || !s.IsPublished {
		t.Errorf("sheet = %+v", s)
	}
	if len(s.Cells) != 1 || s.Cells[0].CellType != CellCode || s.Cells[0].Value != "go run ." {
		t.Errorf("cells = %+v", s.Cells)
	}
}

func TestListCheatSheets_KeepsCreatedAt(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","title":"Go","cells":[],"is_published":true,"created_at":"2024-01-02T03:04:05Z"}]`))
	})

	sheets, err := client.ListCheatSheets(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListCheatSheets() error = %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("len(sheets) = %d, want 1", len(sheets))
	}
	if sheets[0].CreatedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("CreatedAt = %q, want 2024-01-02T03:04:05Z", sheets[0].CreatedAt)
	}

	data, err := json.Marshal(sheets[0])
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"id":"1","title":"Go","cells":[],"is_published":true,"created_at":"2024-01-02T03:04:05Z"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestListPublicCheatSheets_KeepsCreatedAt(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"7","title":"Vim","created_at":"2024-05-06T07:08:09.123456"}]`))
	})

	sheets, err := client.ListPublicCheatSheets(context.Background())
	if err != nil {
		t.Fatalf("ListPublicCheatSheets() error = %v", err)
	}
	if len(sheets) != 1 || sheets[0].CreatedAt != "2024-05-06T07:08:09.123456" {
		t.Errorf("sheets = %+v", sheets)
	}
}

func TestListCheatSheets_WithPublished(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "is_published__list=true%2Cfalse" {
			t.Errorf("query = %s, want is_published__list=true%%2Cfalse", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	})

	sheets, err := client.ListCheatSheets(context.Background(), "tok", WithPublished(true, false))
	if err != nil {
		t.Fatalf("ListCheatSheets() error = %v", err)
	}
	if len(sheets) != 0 {
		t.Errorf("len(sheets) = %d, want 0", len(sheets))
	}
}

func TestListCheatSheets_EmptyPublishedSendsNoQuery(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %s, want none", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	})

	if _, err := client.ListCheatSheets(context.Background(), "tok", WithPublished()); err != nil {
		t.Fatalf("ListCheatSheets() error = %v", err)
	}
}

func TestListCheatSheets_UnexpectedBody(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail":"not a list"}`))
	})

	if _, err := client.ListCheatSheets(context.Background(), "tok"); err == nil {
		t.Error("ListCheatSheets() should fail when the body is not a list")
	}
}

func TestListPublicCheatSheets(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cheatsheets/public/" {
			t.Errorf("path = %s, want /api/cheatsheets/public/", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Authorization = %s, want empty", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`[{"id":"7","title":"Vim","cells":[],"is_published":true}]`))
	})

	sheets, err := client.ListPublicCheatSheets(context.Background())
	if err != nil {
		t.Fatalf("ListPublicCheatSheets() error = %v", err)
	}
	if len(sheets) != 1 || sheets[0].ID != "7" {
		t.Errorf("sheets = %+v", sheets)
	}
}

func TestCreateCheatSheet(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body UnsavedCheatSheet
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if body.Title != "Go" || len(body.Cells) != 1 {
			t.Errorf("body = %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "abc123"})
	})

	id, err := client.CreateCheatSheet(context.Background(), "tok", UnsavedCheatSheet{
		Title: "Go",
		Cells: []Cell{{CellType: CellText, Value: "hello"}},
	})
	if err != nil {
		t.Fatalf("CreateCheatSheet() error = %v", err)
	}
	if id != "abc123" {
		t.Errorf("id = %s, want abc123", id)
	}
}

func TestCreateCheatSheet_CreatedStatusFails(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "abc123"})
	})

	id, err := client.CreateCheatSheet(context.Background(), "tok", UnsavedCheatSheet{Title: "Go"})
	if err == nil {
		t.Fatal("CreateCheatSheet() should fail for 201")
	}
	if id != "" {
		t.Errorf("id = %s, want empty", id)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusCreated {
		t.Errorf("error = %v, want *APIError with 201", err)
	}
}

func TestUpdateCheatSheet(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/cheatsheets/abc123" {
			t.Errorf("path = %s, want /api/cheatsheets/abc123", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["title"]; ok {
			t.Error("unset title should be omitted")
		}
		if body["is_published"] != true {
			t.Errorf("is_published = %v, want true", body["is_published"])
		}
	})

	published := true
	err := client.UpdateCheatSheet(context.Background(), "tok", "abc123", UpdateCheatSheet{IsPublished: &published})
	if err != nil {
		t.Fatalf("UpdateCheatSheet() error = %v", err)
	}
}

func TestUpdateCheatSheet_NotFound(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	title := "New"
	err := client.UpdateCheatSheet(context.Background(), "tok", "missing", UpdateCheatSheet{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCheatSheet() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCheatSheet(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.EscapedPath() != "/api/cheatsheets/a%2Fb" {
			t.Errorf("path = %s, want /api/cheatsheets/a%%2Fb", r.URL.EscapedPath())
		}
	})

	if err := client.DeleteCheatSheet(context.Background(), "tok", "a/b"); err != nil {
		t.Fatalf("DeleteCheatSheet() error = %v", err)
	}
}

func TestCheatSheetOperations_RequireID(t *testing.T) {
	client, _ := New("https://example.com")
	ctx := context.Background()

	if err := client.UpdateCheatSheet(ctx, "tok", "", UpdateCheatSheet{}); !errors.Is(err, ErrMissingID) {
		t.Errorf("UpdateCheatSheet() error = %v, want ErrMissingID", err)
	}
	if err := client.DeleteCheatSheet(ctx, "tok", ""); !errors.Is(err, ErrMissingID) {
		t.Errorf("DeleteCheatSheet() error = %v, want ErrMissingID", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("path = %s, want /api/login", r.URL.Path)
		}
		var creds Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "ada" || creds.Password != "secret" {
			t.Errorf("credentials = %+v", creds)
		}
		json.NewEncoder(w).Encode(Token{AccessToken: "jwt", TokenType: "bearer"})
	})

	token, err := client.Login(context.Background(), Credentials{Username: "ada", Password: "secret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token.AccessToken != "jwt" || token.TokenType != "bearer" {
		t.Errorf("token = %+v", token)
	}
}

func TestLogin_MissingAccessToken(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"bearer"}`))
	})

	token, err := client.Login(context.Background(), Credentials{Username: "ada", Password: "secret"})
	if token != nil {
		t.Errorf("token = %+v, want nil", token)
	}
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("Login() error = %v, want ErrMissingToken", err)
	}
}

func TestLogin_Rejected(t *testing.T) {
	t.Parallel()
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	token, err := client.Login(context.Background(), Credentials{Username: "ada", Password: "wrong"})
	if token != nil {
		t.Errorf("token = %+v, want nil", token)
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Login() error = %v, want ErrUnauthorized", err)
	}
}
