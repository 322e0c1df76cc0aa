package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"smartcloset/dbhelper"
	"smartcloset/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openEngines(t *testing.T) map[string]storage.KeyValue {
	dir := t.TempDir()
	fileKV, err := storage.NewByEngine(storage.EngineJSON, filepath.Join(dir, "kv.json"))
	require.NoError(t, err)
	sqliteKV, err := storage.NewByEngine(storage.EngineSQLite, filepath.Join(dir, "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqliteKV.(*storage.SQLiteKV).Close()
	})
	return map[string]storage.KeyValue{
		storage.EngineJSON:   fileKV,
		storage.EngineSQLite: sqliteKV,
	}
}

func TestKeyValueRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, kv := range openEngines(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "sc_user")
			require.ErrorIs(t, err, storage.ErrNotFound)

			require.NoError(t, kv.Set(ctx, "sc_user", `{"id":"1"}`))
			value, err := kv.Get(ctx, "sc_user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"1"}`, value)

			require.NoError(t, kv.Set(ctx, "sc_user", `{"id":"2"}`))
			value, err = kv.Get(ctx, "sc_user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"2"}`, value)

			require.NoError(t, kv.Delete(ctx, "sc_user"))
			require.NoError(t, kv.Delete(ctx, "sc_user"))
			_, err = kv.Get(ctx, "sc_user")
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})
	}
}

func TestFileKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kv.json")
	kv, err := storage.NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "sc_lab_messages", `[]`))

	reopened, err := storage.NewFileKV(path)
	require.NoError(t, err)
	value, err := reopened.Get(ctx, "sc_lab_messages")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestSQLiteKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")
	kv, err := storage.NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "sc_user", `{"id":"user-123"}`))
	require.NoError(t, kv.Close())

	reopened, err := storage.NewSQLiteKV(path)
	require.NoError(t, err)
	defer reopened.Close()
	value, err := reopened.Get(ctx, "sc_user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"user-123"}`, value)
}

func TestFileKVStartsEmptyOnUnusableDocument(t *testing.T) {
	ctx := context.Background()
	for name, content := range map[string]string{"null": "null", "garbage": "{not json", "array": `["a"]`} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kv.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			kv, err := storage.NewFileKV(path)
			require.NoError(t, err)
			_, err = kv.Get(ctx, "sc_user")
			assert.ErrorIs(t, err, storage.ErrNotFound)

			require.NoError(t, kv.Set(ctx, "sc_user", "{}"))
			require.NoError(t, kv.Delete(ctx, "sc_user"))
			require.NoError(t, kv.Set(ctx, "sc_user", `{"id":"1"}`))

			reopened, err := storage.NewFileKV(path)
			require.NoError(t, err)
			value, err := reopened.Get(ctx, "sc_user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"1"}`, value)
		})
	}
}

func TestUnsupportedEngine(t *testing.T) {
	_, err := storage.NewByEngine("redis", "ignored")
	assert.Error(t, err)
}

func TestGormKVRoundTrip(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping postgres engine")
	}
	db, err := dbhelper.SetupTestDB()
	require.NoError(t, err)
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()

	ctx := context.Background()
	kv := storage.NewGormKV(db)
	require.NoError(t, kv.Set(ctx, "sc_user", "a"))
	require.NoError(t, kv.Set(ctx, "sc_user", "b"))
	value, err := kv.Get(ctx, "sc_user")
	require.NoError(t, err)
	assert.Equal(t, "b", value)
	require.NoError(t, kv.Delete(ctx, "sc_user"))
	_, err = kv.Get(ctx, "sc_user")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
