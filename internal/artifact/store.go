package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the artifact service contract consumed by agent callbacks and
// tools. The hosted artifact service satisfies it remotely; Memory satisfies
// it in-process.
type Store interface {
	// Save appends a new version of key and returns the assigned version
	// number. Versions for a key start at 1 and strictly increase.
	Save(ctx context.Context, sessionID uuid.UUID, key, mimeType string, data []byte) (int, error)

	// Load returns the latest version of key.
	// Returns ErrNotFound if the key has never been saved.
	Load(ctx context.Context, sessionID uuid.UUID, key string) (*Artifact, error)

	// LoadVersion returns a specific version of key.
	// Returns ErrNotFound if that version does not exist.
	LoadVersion(ctx context.Context, sessionID uuid.UUID, key string, version int) (*Artifact, error)

	// List returns the artifact keys stored for a session, in first-save
	// order. Keys only; content is never enumerated.
	List(ctx context.Context, sessionID uuid.UUID) ([]string, error)
}

// Memory is an in-process Store keyed by session ID.
//
// Memory is safe for concurrent use by multiple goroutines.
type Memory struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionArtifacts
	logger   *slog.Logger
}

type sessionArtifacts struct {
	order    []string // keys in first-save order
	versions map[string][]*Artifact
}

// NewMemory creates a Memory store.
// A nil logger falls back to slog.Default().
func NewMemory(logger *slog.Logger) *Memory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Memory{
		sessions: make(map[uuid.UUID]*sessionArtifacts),
		logger:   logger,
	}
}

// Save appends a new version of key and returns its version number.
func (m *Memory) Save(_ context.Context, sessionID uuid.UUID, key, mimeType string, data []byte) (int, error) {
	if err := ValidateKey(key); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess := m.sessions[sessionID]
	if sess == nil {
		sess = &sessionArtifacts{versions: make(map[string][]*Artifact)}
		m.sessions[sessionID] = sess
	}

	existing, known := sess.versions[key]
	if !known {
		sess.order = append(sess.order, key)
	}

	a := &Artifact{
		SessionID: sessionID,
		Key:       key,
		Version:   len(existing) + 1,
		MIMEType:  mimeType,
		Data:      data,
		CreatedAt: time.Now(),
	}
	sess.versions[key] = append(existing, a)

	m.logger.Debug("saved artifact",
		"session_id", sessionID,
		"key", key,
		"version", a.Version,
		"mime_type", mimeType,
		"bytes", len(data))
	return a.Version, nil
}

// Load returns the latest version of key.
func (m *Memory) Load(_ context.Context, sessionID uuid.UUID, key string) (*Artifact, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sess := m.sessions[sessionID]
	if sess == nil {
		return nil, ErrNotFound
	}
	versions := sess.versions[key]
	if len(versions) == 0 {
		return nil, ErrNotFound
	}
	return versions[len(versions)-1], nil
}

// LoadVersion returns a specific version of key.
func (m *Memory) LoadVersion(_ context.Context, sessionID uuid.UUID, key string, version int) (*Artifact, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, fmt.Errorf("load artifact %s: %w", key, ErrNotFound)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sess := m.sessions[sessionID]
	if sess == nil {
		return nil, ErrNotFound
	}
	versions := sess.versions[key]
	if version > len(versions) {
		return nil, fmt.Errorf("load artifact %s version %d: %w", key, version, ErrNotFound)
	}
	return versions[version-1], nil
}

// List returns the artifact keys stored for a session, in first-save order.
func (m *Memory) List(_ context.Context, sessionID uuid.UUID) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess := m.sessions[sessionID]
	if sess == nil {
		return nil, nil
	}
	keys := make([]string, len(sess.order))
	copy(keys, sess.order)
	return keys, nil
}
