package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"kisan-backend/internal/scheme/domain"
	"kisan-backend/internal/scheme/repository"
)

// SchemeSyncScheduler periodically pulls the government scheme catalog from
// an upstream feed and upserts it into the local table.
type SchemeSyncScheduler struct {
	repo     repository.SchemeRepository
	feedURL  string
	interval time.Duration
	client   *http.Client
	stopChan chan struct{}
}

// NewSchemeSyncScheduler creates a new scheduler
func NewSchemeSyncScheduler(repo repository.SchemeRepository, feedURL string, interval time.Duration) *SchemeSyncScheduler {
	return &SchemeSyncScheduler{
		repo:     repo,
		feedURL:  feedURL,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *SchemeSyncScheduler) Start() {
	if s.feedURL == "" {
		log.Println("[SchemeSync] No feed URL configured, scheme sync disabled")
		return
	}

	log.Printf("[SchemeSync] Starting scheme catalog sync (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.syncOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.syncOnce()
			case <-s.stopChan:
				log.Println("[SchemeSync] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *SchemeSyncScheduler) Stop() {
	close(s.stopChan)
}

type feedEntry struct {
	Name                string     `json:"name"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	DocsNeeded          string     `json:"docs_needed"`
	Benefits            string     `json:"benefits"`
	Deadline            *time.Time `json:"deadline"`
}

func (s *SchemeSyncScheduler) syncOnce() {
	entries, err := s.fetchFeed()
	if err != nil {
		log.Printf("[SchemeSync] Fetch failed: %v", err)
		return
	}

	updated := 0
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		scheme := &domain.Scheme{
			Name:                entry.Name,
			EligibilityCriteria: entry.EligibilityCriteria,
			DocsNeeded:          entry.DocsNeeded,
			Benefits:            entry.Benefits,
			Deadline:            entry.Deadline,
		}
		if err := s.repo.Upsert(scheme); err != nil {
			log.Printf("[SchemeSync] Upsert failed for %s: %v", entry.Name, err)
			continue
		}
		updated++
	}
	log.Printf("[SchemeSync] Updated %d of %d scheme entries", updated, len(entries))
}

func (s *SchemeSyncScheduler) fetchFeed() ([]feedEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", s.feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed API error (%d): %s", resp.StatusCode, string(body))
	}

	var entries []feedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return entries, nil
}
