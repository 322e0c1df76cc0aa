// Package wardrobe owns the clothing items and saved outfits of the running
// process, plus the inspiration board and the derived closet numbers.
package wardrobe

import (
	"errors"
	"slices"
	"sync"
	"time"

	"smartcloset/models"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound   = errors.New("clothing item not found")
	ErrOutfitNotFound = errors.New("outfit not found")
)

const dateLayout = "2006-01-02"

// Store keeps items and outfits most recent first. Every mutation is total:
// unknown ids are ignored rather than reported.
type Store struct {
	mu      sync.RWMutex
	items   []models.ClothingItem
	outfits []models.SavedOutfit
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func cloneItem(item models.ClothingItem) models.ClothingItem {
	item.CareInstructions = slices.Clone(item.CareInstructions)
	return item
}

func cloneOutfit(outfit models.SavedOutfit) models.SavedOutfit {
	outfit.ItemIDs = slices.Clone(outfit.ItemIDs)
	outfit.WearDates = slices.Clone(outfit.WearDates)
	return outfit
}

func (s *Store) Items() []models.ClothingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.ClothingItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, cloneItem(item))
	}
	return items
}

func (s *Store) Item(id string) (models.ClothingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return cloneItem(item), nil
		}
	}
	return models.ClothingItem{}, ErrItemNotFound
}

// AddItem prepends the item, generating an id when none is set.
func (s *Store) AddItem(item models.ClothingItem) models.ClothingItem {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.WearCount < 0 {
		item.WearCount = 0
	}
	item = cloneItem(item)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.ClothingItem{item}, s.items...)
	return cloneItem(item)
}

// UpdateItem replaces the item with the same id and reports whether one
// existed. The collection is untouched otherwise.
func (s *Store) UpdateItem(item models.ClothingItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			if item.WearCount < 0 {
				item.WearCount = 0
			}
			s.items[i] = cloneItem(item)
			return true
		}
	}
	return false
}

func (s *Store) DeleteItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.DeleteFunc(s.items, func(item models.ClothingItem) bool {
		return item.ID == id
	})
}

func (s *Store) Outfits() []models.SavedOutfit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	outfits := make([]models.SavedOutfit, 0, len(s.outfits))
	for _, outfit := range s.outfits {
		outfits = append(outfits, cloneOutfit(outfit))
	}
	return outfits
}

func (s *Store) Outfit(id string) (models.SavedOutfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, outfit := range s.outfits {
		if outfit.ID == id {
			return cloneOutfit(outfit), nil
		}
	}
	return models.SavedOutfit{}, ErrOutfitNotFound
}

func (s *Store) AddOutfit(outfit models.SavedOutfit) models.SavedOutfit {
	if outfit.ID == "" {
		outfit.ID = uuid.NewString()
	}
	if outfit.ItemIDs == nil {
		outfit.ItemIDs = []string{}
	}
	outfit = cloneOutfit(outfit)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outfits = append([]models.SavedOutfit{outfit}, s.outfits...)
	return cloneOutfit(outfit)
}

func (s *Store) UpdateOutfit(outfit models.SavedOutfit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outfits {
		if s.outfits[i].ID == outfit.ID {
			s.outfits[i] = cloneOutfit(outfit)
			return true
		}
	}
	return false
}

func (s *Store) DeleteOutfit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outfits = slices.DeleteFunc(s.outfits, func(outfit models.SavedOutfit) bool {
		return outfit.ID == id
	})
}

// LogOutfitWear appends today's date to the outfit's wear log.
func (s *Store) LogOutfitWear(id string) (models.SavedOutfit, error) {
	return s.mutateOutfit(id, func(outfit *models.SavedOutfit) {
		outfit.WearDates = append(outfit.WearDates, s.now().Format(dateLayout))
	})
}

// UndoOutfitWear pops the last logged date. An empty log stays empty.
func (s *Store) UndoOutfitWear(id string) (models.SavedOutfit, error) {
	return s.mutateOutfit(id, func(outfit *models.SavedOutfit) {
		if len(outfit.WearDates) > 0 {
			outfit.WearDates = outfit.WearDates[:len(outfit.WearDates)-1]
		}
	})
}

func (s *Store) mutateOutfit(id string, mutate func(outfit *models.SavedOutfit)) (models.SavedOutfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outfits {
		if s.outfits[i].ID == id {
			mutate(&s.outfits[i])
			return cloneOutfit(s.outfits[i]), nil
		}
	}
	return models.SavedOutfit{}, ErrOutfitNotFound
}
