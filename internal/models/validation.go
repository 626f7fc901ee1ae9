package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// VideoDraft is the form input for creating or editing a video. Drafts are
// validated before any workflow sees them; workflows assume valid shapes.
type VideoDraft struct {
	Name     string  `validate:"required"`
	AuthorID int64   `validate:"required"`
	CatIDs   []int64 `validate:"required,min=1"`
}

// Validate checks the draft against the form rules: name and author are
// required, at least one category must be selected.
func (d VideoDraft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid video: %w", err)
	}

	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		switch fe.Field() {
		case "Name":
			msg += "name is required"
		case "AuthorID":
			msg += "author is required"
		case "CatIDs":
			msg += "at least one category is required"
		default:
			msg += fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return fmt.Errorf("invalid video: %s", msg)
}

// Entity converts a validated draft into a video entity. The id is zero for
// new videos until the save workflow assigns one.
func (d VideoDraft) Entity(id int64) VideoEntity {
	return VideoEntity{ID: id, Name: d.Name, CatIDs: d.CatIDs, AuthorID: d.AuthorID}
}
