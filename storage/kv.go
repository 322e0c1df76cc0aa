// Package storage holds the flat durable key-value store the session and
// chat history persist into.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("key not found")

const (
	EngineJSON     = "json"
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// NewByEngine opens the file backed engines. The postgres engine needs a
// gorm handle and is built with NewGormKV.
func NewByEngine(engine string, path string) (KeyValue, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return NewSQLiteKV(path)
	case EngineJSON:
		return NewFileKV(path)
	default:
		return nil, fmt.Errorf("unsupported store engine: %s", engine)
	}
}
