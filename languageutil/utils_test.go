package languageutil

import (
	"testing"

	"smartcloset/models"

	"github.com/stretchr/testify/assert"
)

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, models.EN, MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, models.ZH, MatchLanguage("zh-CN,zh;q=0.9,en;q=0.8"))
	assert.Equal(t, models.ZH, MatchLanguage(""))
	assert.Equal(t, models.ZH, MatchLanguage("not a header;;"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, models.EN, Resolve("en", "zh-CN"))
	assert.Equal(t, models.ZH, Resolve("zh", "en-US"))
	assert.Equal(t, models.EN, Resolve("fr", "en-GB"))
	assert.Equal(t, models.ZH, Resolve("", ""))
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("Levi's DENIM"), Fold("levi's denim"))
	assert.Equal(t, "白色", Fold("白色"))
}
