package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/go-playground/validator"
)

type Language string

const (
	ZH Language = "zh"
	EN Language = "en"
)

// DefaultLanguage applies when a request names no supported language.
const DefaultLanguage = ZH

func (l *Language) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*l = Language(v)
	case []byte:
		*l = Language(v)
	default:
		return fmt.Errorf("cannot scan %T into Language", value)
	}
	return nil
}

func (l Language) Value() (driver.Value, error) {
	return string(l), nil
}

func (l Language) Valid() bool {
	return l == ZH || l == EN
}

// PromptName is how the language is named inside model instructions.
func (l Language) PromptName() string {
	if l == ZH {
		return "Chinese (Simplified)"
	}
	return "English"
}

// ColorName is used for the color field of image analysis, which the
// instructions request in the bare language name.
func (l Language) ColorName() string {
	if l == ZH {
		return "Chinese"
	}
	return "English"
}

func ValidateLanguage(fl validator.FieldLevel) bool {
	return ValidateLanguageRaw(fl.Field().String())
}

func ValidateLanguageRaw(value string) bool {
	return Language(value).Valid()
}
