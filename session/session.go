// Package session persists lightweight cross-run state, the last exported
// level and play progress, through the gdata save-data manager. Storage is
// best effort: when gdata cannot be opened the session stays memory-only.
package session

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	sessionObject   = "session"
	sessionProperty = "state"
)

// State is the persisted session payload.
type State struct {
	LastLevel string   `yaml:"lastLevel"`
	Completed []string `yaml:"completed"`
}

// Manager loads the session state on open and writes it back after every
// mutation.
type Manager struct {
	m     *gdata.Manager
	state State
}

// Open creates a session manager backed by the platform save-data location.
// A storage failure degrades to a memory-only session with a logged warning.
func Open(appName string) *Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("session: storage unavailable: %v (state will not persist)", err)
		return &Manager{}
	}
	sm := &Manager{m: m}
	if err := sm.load(); err != nil {
		log.Printf("session: load failed: %v (starting fresh)", err)
	}
	return sm
}

func (s *Manager) load() error {
	if s.m == nil || !s.m.ObjectPropExists(sessionObject, sessionProperty) {
		return nil
	}
	data, err := s.m.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return fmt.Errorf("session: load: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("session: unmarshal: %w", err)
	}
	s.state = st
	return nil
}

func (s *Manager) save() {
	if s.m == nil {
		return
	}
	data, err := yaml.Marshal(&s.state)
	if err != nil {
		log.Printf("session: marshal: %v", err)
		return
	}
	if err := s.m.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		log.Printf("session: save: %v", err)
	}
}

// LastLevel returns the path of the most recently exported level.
func (s *Manager) LastLevel() string {
	return s.state.LastLevel
}

// SetLastLevel records the path of the most recently exported level.
func (s *Manager) SetLastLevel(path string) {
	if s.state.LastLevel == path {
		return
	}
	s.state.LastLevel = path
	s.save()
}

// MarkCompleted records that the named level has been solved.
func (s *Manager) MarkCompleted(name string) {
	if name == "" || s.IsCompleted(name) {
		return
	}
	s.state.Completed = append(s.state.Completed, name)
	s.save()
}

// IsCompleted reports whether the named level has been solved before.
func (s *Manager) IsCompleted(name string) bool {
	for _, n := range s.state.Completed {
		if n == name {
			return true
		}
	}
	return false
}
