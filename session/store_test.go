package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"smartcloset/models"
	"smartcloset/storage"
	"smartcloset/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONRoundTrip(t *testing.T) {
	user := models.User{
		ID:           "user-123",
		Name:         "Jane Doe",
		EmailOrPhone: "jane@example.com",
		Avatar:       test.NewRefString("data:image/png;base64,AAAA"),
		Height:       test.NewRefFloat(168),
		Weight:       test.NewRefFloat(52.5),
		Size:         test.NewRefString("M"),
	}
	data, err := json.Marshal(user)
	require.NoError(t, err)
	var decoded models.User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, user, decoded)
}

func TestLoginCreatesPlaceholderThenRestores(t *testing.T) {
	ctx := context.Background()
	kv := test.NewMemoryKV()
	store := NewStore(kv, 0)
	store.Load(ctx)
	_, ok := store.Current()
	require.False(t, ok)

	require.True(t, store.Login(ctx, "jane@example.com", "secret"))
	user, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.EmailOrPhone)

	name := "Jane Updated"
	_, ok = store.UpdateProfile(ctx, models.UserUpdate{Name: &name})
	require.True(t, ok)

	require.True(t, store.Login(ctx, "jane@example.com", "other-secret"))
	user, _ = store.Current()
	assert.Equal(t, "Jane Updated", user.Name)

	require.True(t, store.Login(ctx, "someone@example.com", "x"))
	user, _ = store.Current()
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "someone@example.com", user.EmailOrPhone)
}

func TestLoginAndRegisterRequireArguments(t *testing.T) {
	ctx := context.Background()
	store := NewStore(test.NewMemoryKV(), 0)

	assert.False(t, store.Login(ctx, "", "secret"))
	assert.False(t, store.Login(ctx, "jane", ""))
	assert.False(t, store.Register(ctx, "", "jane", "secret"))
	assert.False(t, store.Register(ctx, "Jane", "", "secret"))
	assert.False(t, store.Register(ctx, "Jane", "jane", ""))
	assert.False(t, store.Login(ctx, "   ", "secret"))
	assert.False(t, store.Login(ctx, "jane", " \t"))
	assert.False(t, store.Register(ctx, " ", "jane", "secret"))
	assert.False(t, store.Register(ctx, "Jane", "  ", "secret"))
	assert.False(t, store.Register(ctx, "Jane", "jane", "  "))
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestLoginTrimsIdentifier(t *testing.T) {
	ctx := context.Background()
	store := NewStore(test.NewMemoryKV(), 0)

	require.True(t, store.Login(ctx, "  jane@example.com ", "secret"))
	user, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", user.EmailOrPhone)

	require.True(t, store.Register(ctx, " Lin ", " 13800000000 ", "pw"))
	user, _ = store.Current()
	assert.Equal(t, "Lin", user.Name)
	assert.Equal(t, "13800000000", user.EmailOrPhone)
}

func TestRegisterCreatesFreshProfile(t *testing.T) {
	ctx := context.Background()
	store := NewStore(test.NewMemoryKV(), 0)
	store.now = func() time.Time { return time.UnixMilli(1700000000123) }

	require.True(t, store.Register(ctx, "Lin", "13800000000", "pw"))
	user, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, models.User{ID: "1700000000123", Name: "Lin", EmailOrPhone: "13800000000"}, user)
}

func TestLoadOnStartReturnsLastPersisted(t *testing.T) {
	ctx := context.Background()
	kv, err := storage.NewFileKV(filepath.Join(t.TempDir(), "kv.json"))
	require.NoError(t, err)

	store := NewStore(kv, 0)
	require.True(t, store.Register(ctx, "Lin", "lin@example.com", "pw"))
	height := 170.0
	expected, ok := store.UpdateProfile(ctx, models.UserUpdate{Height: &height})
	require.True(t, ok)

	restarted := NewStore(kv, 0)
	restarted.Load(ctx)
	user, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, expected, user)
}

func TestCorruptStoredUserMeansSignedOut(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"{not json", `"just a string"`, `{}`} {
		kv := test.NewMemoryKV()
		kv.Values[UserKey] = raw
		store := NewStore(kv, 0)
		store.Load(ctx)
		_, ok := store.Current()
		assert.False(t, ok, raw)
	}
}

func TestLogoutClearsMemoryAndStorage(t *testing.T) {
	ctx := context.Background()
	kv := test.NewMemoryKV()
	store := NewStore(kv, 0)
	require.True(t, store.Login(ctx, "jane", "pw"))
	require.Contains(t, kv.Values, UserKey)

	store.Logout(ctx)
	_, ok := store.Current()
	assert.False(t, ok)
	assert.NotContains(t, kv.Values, UserKey)

	_, ok = store.UpdateProfile(ctx, models.UserUpdate{})
	assert.False(t, ok)
	assert.NotContains(t, kv.Values, UserKey)
}

func TestPersistFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	kv := test.NewMemoryKV()
	kv.FailWrites = true
	store := NewStore(kv, 0)

	require.True(t, store.Login(ctx, "jane", "pw"))
	_, ok := store.Current()
	assert.True(t, ok)
}

func TestDelayHonoursCancellation(t *testing.T) {
	store := NewStore(test.NewMemoryKV(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, store.Login(ctx, "jane", "pw"))
	assert.False(t, store.Register(ctx, "Jane", "jane", "pw"))

	store = NewStore(test.NewMemoryKV(), 10*time.Millisecond)
	started := time.Now()
	assert.True(t, store.Login(context.Background(), "jane", "pw"))
	assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond)
}
