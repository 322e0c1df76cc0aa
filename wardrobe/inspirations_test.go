package wardrobe

import (
	"testing"
	"time"

	"smartcloset/models"

	"github.com/stretchr/testify/assert"
)

func TestInspirationBoard(t *testing.T) {
	board := NewInspirationBoard()
	board.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }

	first := board.Save(models.SavedInspiration{Content: "trench + jeans"})
	assert.Equal(t, models.FolderChat, first.Folder)
	assert.Equal(t, "2024-05-01", first.Date)
	assert.NotEmpty(t, first.ID)

	second := board.Save(models.SavedInspiration{Content: "white sneakers", Folder: models.FolderShopping, Date: "2024-04-02"})
	assert.Equal(t, "2024-04-02", second.Date)

	all := board.List("")
	assert.Equal(t, []string{second.ID, first.ID}, []string{all[0].ID, all[1].ID})
	assert.Len(t, board.List(models.FolderShopping), 1)
	assert.Empty(t, board.List(models.FolderOutfit))

	assert.True(t, board.IsSaved("trench + jeans"))
	assert.False(t, board.IsSaved("trench"))
}

func TestDeleteInspirationTwice(t *testing.T) {
	board := NewInspirationBoard()
	saved := board.Save(models.SavedInspiration{Content: "look"})
	board.Save(models.SavedInspiration{Content: "other"})

	board.Delete(saved.ID)
	assert.Equal(t, 1, board.Count())
	board.Delete(saved.ID)
	assert.Equal(t, 1, board.Count())
	assert.False(t, board.IsSaved("look"))
}
