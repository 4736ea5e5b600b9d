package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/whisper-dev/whisper/shared/errors"
)

type MessageValidator struct {
	MaxLen int
}

func (v *MessageValidator) Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.BadRequest("Message cannot be empty")
	}
	if v.MaxLen > 0 && utf8.RuneCountInString(text) > v.MaxLen {
		return errors.BadRequest("Message is too long")
	}
	return nil
}
