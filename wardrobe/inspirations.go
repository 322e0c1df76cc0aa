package wardrobe

import (
	"slices"
	"sync"
	"time"

	"smartcloset/models"

	"github.com/google/uuid"
)

// InspirationBoard holds bookmarked stylist replies, newest first.
type InspirationBoard struct {
	mu    sync.RWMutex
	saved []models.SavedInspiration
	now   func() time.Time
}

func NewInspirationBoard() *InspirationBoard {
	return &InspirationBoard{now: time.Now}
}

func (b *InspirationBoard) List(folder models.InspirationFolder) []models.SavedInspiration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	list := []models.SavedInspiration{}
	for _, insp := range b.saved {
		if folder == "" || insp.Folder == folder {
			insp.Tags = slices.Clone(insp.Tags)
			list = append(list, insp)
		}
	}
	return list
}

func (b *InspirationBoard) Save(insp models.SavedInspiration) models.SavedInspiration {
	if insp.ID == "" {
		insp.ID = uuid.NewString()
	}
	if insp.Folder == "" {
		insp.Folder = models.FolderChat
	}
	if insp.Date == "" {
		insp.Date = b.now().Format(dateLayout)
	}
	insp.Tags = slices.Clone(insp.Tags)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saved = append([]models.SavedInspiration{insp}, b.saved...)
	return insp
}

// Delete removes the inspiration if present. Repeated deletes are no-ops.
func (b *InspirationBoard) Delete(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saved = slices.DeleteFunc(b.saved, func(insp models.SavedInspiration) bool {
		return insp.ID == id
	})
}

func (b *InspirationBoard) IsSaved(content string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.ContainsFunc(b.saved, func(insp models.SavedInspiration) bool {
		return insp.Content == content
	})
}

func (b *InspirationBoard) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.saved)
}
