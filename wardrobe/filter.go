package wardrobe

import (
	"strings"

	"smartcloset/languageutil"
	"smartcloset/models"
)

// Filter narrows the closet view. An empty Category or models.CategoryAll
// keeps every category; an empty Season keeps every season.
type Filter struct {
	Category        string
	Season          models.Season
	Query           string
	IncludeArchived bool
}

func (f Filter) matches(item models.ClothingItem, foldedQuery string) bool {
	if item.IsArchived && !f.IncludeArchived {
		return false
	}
	if f.Category != "" && f.Category != models.CategoryAll && string(item.Category) != f.Category {
		return false
	}
	if f.Season != "" && item.Season != f.Season {
		return false
	}
	if foldedQuery == "" {
		return true
	}
	fields := []string{item.Description, item.Color}
	if item.Brand != nil {
		fields = append(fields, *item.Brand)
	}
	if item.Material != nil {
		fields = append(fields, *item.Material)
	}
	for _, field := range fields {
		if strings.Contains(languageutil.Fold(field), foldedQuery) {
			return true
		}
	}
	return false
}

func (s *Store) Search(filter Filter) []models.ClothingItem {
	foldedQuery := languageutil.Fold(strings.TrimSpace(filter.Query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.ClothingItem{}
	for _, item := range s.items {
		if filter.matches(item, foldedQuery) {
			items = append(items, cloneItem(item))
		}
	}
	return items
}

// ActiveItems is the closet the stylist gets to pick from.
func (s *Store) ActiveItems() []models.ClothingItem {
	return s.Search(Filter{})
}
