// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/models"
)

// AutoLockMessage is the notification emitted when the idle timer fires.
const AutoLockMessage = "Vault has been auto-locked due to inactivity."

// State is the session state: either [Locked] or [Unlocked].
type State interface {
	isState()
}

// Locked is the state without a master key.
type Locked struct{}

// Unlocked is the state holding the session master key.
type Unlocked struct {
	key *crypto.MasterKey
}

func (Locked) isState()   {}
func (Unlocked) isState() {}

// Key returns the master key of the session.
func (u Unlocked) Key() *crypto.MasterKey { return u.key }

// Activity is a user input signal that resets the idle timer.
type Activity int

const (
	ActivityPointer Activity = iota + 1
	ActivityKey
	ActivityClick
	ActivityScroll
)

func (a Activity) valid() bool {
	return a >= ActivityPointer && a <= ActivityScroll
}

// SessionConfig holds session defaults.
type SessionConfig struct {
	// DefaultAutoLock applies until a timeout has been persisted.
	DefaultAutoLock models.AutoLockTimeout
}

// Session owns the single in-memory master key and the auto-lock timer.
type Session struct {
	mu      sync.Mutex
	state   State
	timeout models.AutoLockTimeout
	timer   *time.Timer
	// gen invalidates timers that fire after being replaced.
	gen uint64

	deriver  crypto.KeyDeriver
	salts    store.SaltRepository
	blobs    *BlobStore
	settings store.SettingsRepository
	notifier Notifier
	logger   *logger.Logger
}

// NewSession returns a locked session.
func NewSession(
	deriver crypto.KeyDeriver,
	salts store.SaltRepository,
	blobs *BlobStore,
	settings store.SettingsRepository,
	notifier Notifier,
	cfg SessionConfig,
	logger *logger.Logger,
) *Session {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	timeout := cfg.DefaultAutoLock
	if !timeout.Valid() {
		timeout = models.DefaultAutoLockTimeout
	}

	return &Session{
		state:    Locked{},
		timeout:  timeout,
		deriver:  deriver,
		salts:    salts,
		blobs:    blobs,
		settings: settings,
		notifier: notifier,
		logger:   logger,
	}
}

// Unlock derives a key from password and keeps it if the stored vault opens
// with it. A fresh install without salt or record unlocks with any
// password. On [ErrAuthenticationFailed] nothing is retained and the state
// does not change.
func (s *Session) Unlock(ctx context.Context, password string) error {
	salt, err := s.ensureSalt(ctx)
	if err != nil {
		return err
	}

	key, err := s.deriver.DeriveKey(password, salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	res := s.blobs.Decrypt(ctx, key)
	if res.Err != nil {
		key.Destroy()
		s.logger.Err(res.Err).Str("func", "Session.Unlock").Msg("failed to read vault")
		return res.Err
	}
	if res.Status == StatusFailed {
		key.Destroy()
		s.logger.Warn().Str("func", "Session.Unlock").Msg("vault did not open with the supplied password")
		return ErrAuthenticationFailed
	}

	s.mu.Lock()
	if u, ok := s.state.(Unlocked); ok {
		u.key.Destroy()
	}
	s.state = Unlocked{key: key}
	s.rescheduleLocked()
	s.mu.Unlock()

	s.logger.Info().Str("func", "Session.Unlock").Str("vault", res.Status.String()).Msg("vault unlocked")
	return nil
}

// Lock destroys the master key. It is idempotent.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockLocked() {
		s.logger.Info().Str("func", "Session.Lock").Msg("vault locked")
	}
}

// Current returns the current state.
func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Locked reports whether the session holds no key.
func (s *Session) Locked() bool {
	_, ok := s.Current().(Locked)
	return ok
}

// Key returns the session key or [ErrVaultLocked]. A key obtained before a
// lock fails with crypto.ErrKeyDestroyed once the lock happens.
func (s *Session) Key() (*crypto.MasterKey, error) {
	if u, ok := s.Current().(Unlocked); ok {
		return u.key, nil
	}
	return nil, ErrVaultLocked
}

// Touch records user activity and restarts the idle timer of an unlocked
// session.
func (s *Session) Touch(a Activity) {
	if !a.valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.(Unlocked); ok {
		s.rescheduleLocked()
	}
}

// AutoLockTimeout returns the active idle timeout.
func (s *Session) AutoLockTimeout() models.AutoLockTimeout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeout
}

// LoadAutoLockTimeout reads the persisted timeout. A missing or invalid
// value keeps the configured default.
func (s *Session) LoadAutoLockTimeout(ctx context.Context) error {
	t, found, err := s.settings.GetAutoLockTimeout(ctx)
	if err != nil {
		return fmt.Errorf("load auto-lock timeout: %w", err)
	}
	if !found {
		return nil
	}
	if !t.Valid() {
		s.logger.Warn().Str("func", "Session.LoadAutoLockTimeout").Int("minutes", int(t)).Msg("ignoring persisted auto-lock timeout")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = t
	if _, ok := s.state.(Unlocked); ok {
		s.rescheduleLocked()
	}
	return nil
}

// SetAutoLockTimeout persists t and restarts the idle timer from zero.
func (s *Session) SetAutoLockTimeout(ctx context.Context, t models.AutoLockTimeout) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAutoLockTimeout, int(t))
	}
	if err := s.settings.SetAutoLockTimeout(ctx, t); err != nil {
		s.logger.Err(err).Str("func", "Session.SetAutoLockTimeout").Msg("failed to persist auto-lock timeout")
		return fmt.Errorf("persist auto-lock timeout: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = t
	if _, ok := s.state.(Unlocked); ok {
		s.rescheduleLocked()
	}
	return nil
}

// Close locks the session and stops the timer.
func (s *Session) Close() {
	s.Lock()
}

func (s *Session) ensureSalt(ctx context.Context) (models.Salt, error) {
	salt, found, err := s.salts.GetSalt(ctx)
	if err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	if found {
		return salt, nil
	}

	fresh, err := crypto.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt, err = s.salts.CreateSaltIfAbsent(ctx, fresh)
	if err != nil {
		return "", fmt.Errorf("create salt: %w", err)
	}
	s.logger.Info().Str("func", "Session.ensureSalt").Msg("vault salt initialised")
	return salt, nil
}

// lockLocked reports whether a key was held. s.mu must be held.
func (s *Session) lockLocked() bool {
	s.stopTimerLocked()
	u, ok := s.state.(Unlocked)
	if !ok {
		return false
	}
	u.key.Destroy()
	s.state = Locked{}
	return true
}

func (s *Session) stopTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) rescheduleLocked() {
	s.stopTimerLocked()
	if s.timeout == models.AutoLockNever {
		return
	}

	gen := s.gen
	s.timer = time.AfterFunc(s.timeout.Duration(), func() {
		s.expire(gen)
	})
}

func (s *Session) expire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.lockLocked() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.logger.Info().Str("func", "Session.expire").Msg("vault auto-locked")
	s.notifier.Notify(models.Notification{Message: AutoLockMessage, Type: models.NotificationInfo})
}
