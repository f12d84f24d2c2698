package cheatsheets

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Cell types accepted by the server.
const (
	CellText     = "text"
	CellCode     = "code"
	CellMarkdown = "markdown"
)

// maxTitleLength bounds cheat sheet titles.
const maxTitleLength = 255

// errEmptyUpdate is returned by UpdateCheatSheet.Validate when no field is set.
var errEmptyUpdate = errors.New("at least one field must be set")

// Cell is a single block of a cheat sheet.
type Cell struct {
	CellType string `json:"cell_type"`
	Value    string `json:"value"`
}

// CheatSheet is a saved cheat sheet as returned by the API.
type CheatSheet struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Cells       []Cell `json:"cells"`
	IsPublished bool   `json:"is_published"`
	// CreatedAt is the creation timestamp exactly as the server sent it.
	CreatedAt   string `json:"created_at,omitempty"`
}

// UnsavedCheatSheet is the payload for creating a cheat sheet.
type UnsavedCheatSheet struct {
	Title       string `json:"title"`
	Cells       []Cell `json:"cells"`
	IsPublished bool   `json:"is_published"`
}

// UpdateCheatSheet is the payload for a partial update. Nil fields are left
// unchanged on the server.
type UpdateCheatSheet struct {
	Title       *string `json:"title,omitempty"`
	Cells       []Cell  `json:"cells,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// Validate checks a cell.
func (c Cell) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.CellType,
			validation.Required,
			validation.In(CellText, CellCode, CellMarkdown),
		),
	)
}

// Validate checks the payload before it is sent. The client never calls it
// on its own.
func (s UnsavedCheatSheet) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&s.Cells),
	)
}

// Validate checks the payload before it is sent. The client never calls it
// on its own.
func (u UpdateCheatSheet) Validate() error {
	if u.Title == nil && len(u.Cells) == 0 && u.IsPublished == nil {
		return errEmptyUpdate
	}
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty, validation.Length(1, maxTitleLength)),
		validation.Field(&u.Cells),
	)
}
