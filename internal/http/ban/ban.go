// Package ban turns repeated rate-limit violations into temporary bans.
package ban

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"
)

type Service struct {
	store       Store
	threshold   int
	window      time.Duration
	banDuration time.Duration
}

// NewService bans a client once it collects threshold strikes within window.
func NewService(store Store, threshold int, window, banDuration time.Duration) *Service {
	return &Service{
		store:       store,
		threshold:   threshold,
		window:      window,
		banDuration: banDuration,
	}
}

// Strike records a rate-limit violation by target on route and reports
// whether it led to a ban.
func (s *Service) Strike(target, route string) (bool, error) {
	strikes, err := s.store.AddStrike(target, s.window)
	if err != nil {
		return false, fmt.Errorf("failed to record strike: %w", err)
	}
	if s.threshold <= 0 || strikes < s.threshold {
		return false, nil
	}

	if err := s.store.Ban(target, s.banDuration); err != nil {
		return false, fmt.Errorf("failed to ban %s: %w", target, err)
	}
	if err := s.store.ResetStrikes(target); err != nil {
		log.Printf("failed to reset strikes for %s: %v", target, err)
	}

	entry := BanLogEntry{Target: target, Route: route, Strikes: strikes, Time: time.Now().UTC()}
	if err := s.store.AppendLog(entry); err != nil {
		log.Printf("failed to log ban of %s: %v", target, err)
	}
	log.Printf("⚠️ BAN: %s blocked for %s after %d strikes on %s", target, s.banDuration, strikes, route)
	return true, nil
}

func (s *Service) IsBanned(target string) (bool, error) {
	return s.store.IsBanned(target)
}

func (s *Service) Unban(target string) (bool, error) {
	return s.store.Unban(target)
}

type Status struct {
	ActiveBans []string      `json:"active_bans"`
	Log        []BanLogEntry `json:"log"`
}

func (s *Service) Status() (Status, error) {
	active, err := s.store.ActiveBans()
	if err != nil {
		return Status{}, err
	}
	entries, err := s.store.Log()
	if err != nil {
		return Status{}, err
	}
	if active == nil {
		active = []string{}
	}
	return Status{ActiveBans: active, Log: entries}, nil
}

// StartDailyBanSummary writes a summary of the ban log shortly before
// midnight every day and clears the log.
func (s *Service) StartDailyBanSummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		s.SendDailyBanSummary()
	}
}

func (s *Service) SendDailyBanSummary() {
	entries, err := s.store.DrainLog()
	if err != nil {
		log.Printf("❌ Failed to read ban log: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}
	log.Print(Summarize(entries))
}

// Summarize renders the ban log as a plain-text report grouped by route and
// by target.
func Summarize(entries []BanLogEntry) string {
	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)
	for _, entry := range entries {
		routeCounts[entry.Route]++
		targetCounts[entry.Target]++
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Daily ban summary: %d bans\n", len(entries))
	sb.WriteString("By route:\n")
	for _, route := range sortedKeys(routeCounts) {
		fmt.Fprintf(&sb, "  %s: %d\n", route, routeCounts[route])
	}
	sb.WriteString("By target:\n")
	for _, target := range sortedKeys(targetCounts) {
		fmt.Fprintf(&sb, "  %s: %d\n", target, targetCounts[target])
	}
	return sb.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
