package models

import (
	"database/sql/driver"
	"fmt"
	"slices"

	"github.com/go-playground/validator"
)

type Category string

const (
	CategoryTop       Category = "Top"
	CategoryBottom    Category = "Bottom"
	CategoryShoes     Category = "Shoes"
	CategoryOuterwear Category = "Outerwear"
	CategoryAccessory Category = "Accessory"
	CategoryDress     Category = "Dress"
)

// CategoryAll is the closet filter value meaning "no category filter". It is
// never a valid item category.
const CategoryAll = "All"

var Categories = []Category{
	CategoryTop,
	CategoryBottom,
	CategoryShoes,
	CategoryOuterwear,
	CategoryAccessory,
	CategoryDress,
}

func (c *Category) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*c = Category(v)
	case []byte:
		*c = Category(v)
	default:
		return fmt.Errorf("cannot scan %T into Category", value)
	}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// ParseCategory accepts only the exact enum spelling.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	if !c.Valid() {
		return "", false
	}
	return c, true
}

func ValidateCategory(fl validator.FieldLevel) bool {
	return ValidateCategoryRaw(fl.Field().String())
}

func ValidateCategoryRaw(value string) bool {
	_, ok := ParseCategory(value)
	return ok
}
