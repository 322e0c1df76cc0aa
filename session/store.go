// Package session holds the mock signed-in user and the stylist chat log,
// both mirrored into the durable key-value store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"smartcloset/models"
	"smartcloset/storage"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

const (
	UserKey      = "sc_user"
	DefaultDelay = 800 * time.Millisecond
)

// Store is the explicit session object. Load must run once at startup;
// Logout is the teardown.
type Store struct {
	mu    sync.RWMutex
	kv    storage.KeyValue
	user  *models.User
	delay time.Duration
	now   func() time.Time
}

func NewStore(kv storage.KeyValue, delay time.Duration) *Store {
	return &Store{
		kv:    kv,
		delay: delay,
		now:   time.Now,
	}
}

// Load restores the persisted user. A missing or unreadable value leaves the
// session signed out.
func (s *Store) Load(ctx context.Context) {
	user := s.readPersisted(ctx)
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

func (s *Store) readPersisted(ctx context.Context) *models.User {
	raw, err := s.kv.Get(ctx, UserKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Ctx(ctx).Warn().Err(err).Msg("session read failed")
		}
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		log.Ctx(ctx).Warn().Err(err).Msg("ignoring unreadable stored user")
		return nil
	}
	return &user
}

func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// wait simulates network latency. It reports false when ctx ends first.
func (s *Store) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Login accepts any credentials that are not blank after trimming. A stored profile with the same
// identifier is restored, otherwise a placeholder profile is created.
func (s *Store) Login(ctx context.Context, identifier string, secret string) bool {
	if !s.wait(ctx) {
		return false
	}
	identifier, secret = strings.TrimSpace(identifier), strings.TrimSpace(secret)
	if identifier == "" || secret == "" {
		return false
	}
	user := s.readPersisted(ctx)
	if user == nil || user.EmailOrPhone != identifier {
		user = &models.User{
			ID:           "user-123",
			Name:         "Jane Doe",
			EmailOrPhone: identifier,
		}
	}
	s.setUser(ctx, user)
	return true
}

func (s *Store) Register(ctx context.Context, name string, identifier string, secret string) bool {
	if !s.wait(ctx) {
		return false
	}
	name, identifier = strings.TrimSpace(name), strings.TrimSpace(identifier)
	if name == "" || identifier == "" || strings.TrimSpace(secret) == "" {
		return false
	}
	s.setUser(ctx, &models.User{
		ID:           strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:         name,
		EmailOrPhone: identifier,
	})
	return true
}

func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	if err := s.kv.Delete(ctx, UserKey); err != nil {
		reportPersistFailure(ctx, "clear user", err)
	}
}

// UpdateProfile merges the update into the current user. It returns false
// when nobody is signed in.
func (s *Store) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, bool) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return models.User{}, false
	}
	updated := update.Apply(*s.user)
	s.user = &updated
	s.mu.Unlock()
	s.persist(ctx, updated)
	return updated, true
}

func (s *Store) setUser(ctx context.Context, user *models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.persist(ctx, *user)
}

func (s *Store) persist(ctx context.Context, user models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		reportPersistFailure(ctx, "encode user", err)
		return
	}
	if err := s.kv.Set(ctx, UserKey, string(data)); err != nil {
		reportPersistFailure(ctx, "write user", err)
	}
}

func reportPersistFailure(ctx context.Context, op string, err error) {
	log.Ctx(ctx).Error().Err(err).Str("op", op).Msg("session persistence failed")
	sentry.CaptureException(fmt.Errorf("session %s: %w", op, err))
}
