package models

import "github.com/go-playground/validator"

type InspirationFolder string

const (
	FolderShopping InspirationFolder = "shopping"
	FolderOutfit   InspirationFolder = "outfit"
	FolderChat     InspirationFolder = "chat"
)

type SavedInspiration struct {
	ID      string            `json:"id"`
	Content string            `json:"content"`
	Date    string            `json:"date"` // YYYY-MM-DD
	Folder  InspirationFolder `json:"folder"`
	Tags    []string          `json:"tags,omitempty"`
}

func ValidateFolder(fl validator.FieldLevel) bool {
	return ValidateFolderRaw(fl.Field().String())
}

func ValidateFolderRaw(value string) bool {
	switch InspirationFolder(value) {
	case FolderShopping, FolderOutfit, FolderChat:
		return true
	}
	return false
}
