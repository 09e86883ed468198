package ban

import (
	"slices"
	"sync"
	"time"
)

type expiring struct {
	count   int
	expires time.Time
}

// MemoryStore is the Store used when no Redis is configured. State is lost
// on restart and not shared between replicas.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	strikes map[string]expiring
	bans    map[string]time.Time
	log     []BanLogEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:     time.Now,
		strikes: map[string]expiring{},
		bans:    map[string]time.Time{},
	}
}

func (s *MemoryStore) AddStrike(target string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.strikes[target]
	if !ok || !now.Before(e.expires) {
		e = expiring{expires: now.Add(window)}
	}
	e.count++
	s.strikes[target] = e
	return e.count, nil
}

func (s *MemoryStore) ResetStrikes(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.strikes, target)
	return nil
}

func (s *MemoryStore) Ban(target string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bans[target] = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsBanned(target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked(target), nil
}

func (s *MemoryStore) activeLocked(target string) bool {
	until, ok := s.bans[target]
	if !ok {
		return false
	}
	if !s.now().Before(until) {
		delete(s.bans, target)
		return false
	}
	return true
}

func (s *MemoryStore) Unban(target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := s.activeLocked(target)
	delete(s.bans, target)
	delete(s.strikes, target)
	return active, nil
}

func (s *MemoryStore) ActiveBans() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var targets []string
	for target := range s.bans {
		if s.activeLocked(target) {
			targets = append(targets, target)
		}
	}
	slices.Sort(targets)
	return targets, nil
}

func (s *MemoryStore) AppendLog(entry BanLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, entry)
	return nil
}

func (s *MemoryStore) Log() ([]BanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.log), nil
}

func (s *MemoryStore) DrainLog() ([]BanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := s.log
	s.log = nil
	return logs, nil
}
