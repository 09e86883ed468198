package ban

import (
	"time"
)

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Store keeps strike counters, active bans and the ban log.
type Store interface {
	// AddStrike increments target's strike counter. The counter expires
	// window after its first strike.
	AddStrike(target string, window time.Duration) (int, error)
	ResetStrikes(target string) error
	Ban(target string, ttl time.Duration) error
	IsBanned(target string) (bool, error)
	Unban(target string) (bool, error)
	ActiveBans() ([]string, error)
	AppendLog(entry BanLogEntry) error
	// DrainLog returns the ban log and empties it.
	DrainLog() ([]BanLogEntry, error)
	Log() ([]BanLogEntry, error)
}
