package postmessage

import (
	"errors"
	"fmt"

	playground "github.com/go-playground/validator/v10"

	"github.com/zestagio/timeline/internal/validator"
)

// MaxMessageLength is the character limit of a message text, counted in runes.
const MaxMessageLength = 280

var (
	ErrMessageTooLong = errors.New("message too long")
	ErrEmptyMessage   = errors.New("message is empty")
)

type Request struct {
	ID     string
	Text   string `validate:"max=280,notblank"`
	Author string
}

// Validate reports the first broken rule of the text: length first, then blankness.
func (r Request) Validate() error {
	err := validator.Validator.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate request: %v", err)
	}

	switch fieldErrs[0].Tag() {
	case "max":
		return ErrMessageTooLong
	case "notblank":
		return ErrEmptyMessage
	}
	return fmt.Errorf("validate request: %v", err)
}
