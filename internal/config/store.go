package config

import "sync/atomic"

// Store publishes the active configuration to concurrent readers. A reload
// swaps the whole Config in a single atomic pointer write, so a reader
// always sees one complete snapshot and never a half-updated struct.
type Store struct {
	active atomic.Pointer[Config]
}

func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.active.Store(cfg)
	return s
}

// Load returns the current snapshot. Callers must treat it as read-only;
// a reload publishes a new snapshot instead of mutating this one.
func (s *Store) Load() *Config {
	return s.active.Load()
}

// Swap publishes cfg as the active snapshot.
func (s *Store) Swap(cfg *Config) {
	s.active.Store(cfg)
}
