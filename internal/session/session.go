// Package session holds the files extracted during one run together with
// any manual title overrides. State lives in memory only.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/muxlabel/internal/media"
)

var (
	ErrUnknownFile  = errors.New("file not in session")
	ErrUnknownTrack = errors.New("track not found")
)

// Session is an ordered, goroutine-safe collection of extracted files keyed
// by path. Readers get copies, so callers cannot mutate shared state.
type Session struct {
	mu      sync.RWMutex
	id      uuid.UUID
	started time.Time
	order   []string
	files   map[string]*media.MediaFileInfo
}

// New starts an empty session.
func New() *Session {
	return &Session{
		id:      uuid.New(),
		started: time.Now(),
		files:   make(map[string]*media.MediaFileInfo),
	}
}

// ID identifies the session; it changes on [Session.Clear].
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Started returns when the session (or its last Clear) began.
func (s *Session) Started() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Put stores info under its FilePath. Re-extracting a file replaces the
// previous entry in place, dropping its overrides, and reports true.
func (s *Session) Put(info media.MediaFileInfo) bool {
	c := info.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.files[info.FilePath]
	if !replaced {
		s.order = append(s.order, info.FilePath)
	}
	s.files[info.FilePath] = &c
	return replaced
}

// Files returns copies of all entries in insertion order.
func (s *Session) Files() []media.MediaFileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]media.MediaFileInfo, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, s.files[p].Clone())
	}
	return out
}

// SetTitle records a manual title for one track of one file. An empty
// title removes the override.
func (s *Session) SetTitle(path string, trackID int, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.files[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFile, path)
	}
	if !info.SetNewTitle(trackID, title) {
		return fmt.Errorf("%w: %s has no track %d", ErrUnknownTrack, path, trackID)
	}
	return nil
}

// Remove drops path from the session.
func (s *Session) Remove(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[path]; !ok {
		return false
	}
	delete(s.files, path)
	for i, p := range s.order {
		if p == path {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear discards every entry and starts a fresh session ID.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.New()
	s.started = time.Now()
	s.order = nil
	s.files = make(map[string]*media.MediaFileInfo)
}

// Len returns the number of files held.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
