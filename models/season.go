package models

import (
	"database/sql/driver"
	"fmt"
	"slices"

	"github.com/go-playground/validator"
)

type Season string

const (
	SeasonSpring  Season = "Spring"
	SeasonSummer  Season = "Summer"
	SeasonAutumn  Season = "Autumn"
	SeasonWinter  Season = "Winter"
	SeasonAllYear Season = "All Year"
)

var Seasons = []Season{
	SeasonSpring,
	SeasonSummer,
	SeasonAutumn,
	SeasonWinter,
	SeasonAllYear,
}

func (s *Season) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = Season(v)
	case []byte:
		*s = Season(v)
	default:
		return fmt.Errorf("cannot scan %T into Season", value)
	}
	return nil
}

func (s Season) Value() (driver.Value, error) {
	return string(s), nil
}

func (s Season) Valid() bool {
	return slices.Contains(Seasons, s)
}

// ParseSeason maps the model's spellings of the all-season value onto
// SeasonAllYear and rejects everything outside the enum.
func ParseSeason(raw string) (Season, bool) {
	switch raw {
	case "All Year", "AllYear", "ALL":
		return SeasonAllYear, true
	}
	s := Season(raw)
	if !s.Valid() {
		return "", false
	}
	return s, true
}

func ValidateSeason(fl validator.FieldLevel) bool {
	return ValidateSeasonRaw(fl.Field().String())
}

func ValidateSeasonRaw(value string) bool {
	_, ok := ParseSeason(value)
	return ok
}
