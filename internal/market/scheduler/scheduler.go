package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"kisan-backend/internal/market/domain"
	"kisan-backend/internal/market/repository"
)

// PriceSyncScheduler periodically pulls the latest mandi prices from an
// upstream feed and upserts them into the local table.
type PriceSyncScheduler struct {
	repo     repository.MarketRepository
	feedURL  string
	interval time.Duration
	client   *http.Client
	stopChan chan struct{}
}

// NewPriceSyncScheduler creates a new scheduler
func NewPriceSyncScheduler(repo repository.MarketRepository, feedURL string, interval time.Duration) *PriceSyncScheduler {
	return &PriceSyncScheduler{
		repo:     repo,
		feedURL:  feedURL,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *PriceSyncScheduler) Start() {
	if s.feedURL == "" {
		log.Println("[MarketSync] No feed URL configured, price sync disabled")
		return
	}

	log.Printf("[MarketSync] Starting market price sync (interval: %s)", s.interval)

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
				log.Println("[MarketSync] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *PriceSyncScheduler) Stop() {
	close(s.stopChan)
}

type feedEntry struct {
	Crop  string  `json:"crop"`
	Mandi string  `json:"mandi"`
	Price float64 `json:"price"`
	Trend string  `json:"trend"`
}

func (s *PriceSyncScheduler) syncOnce() {
	entries, err := s.fetchFeed()
	if err != nil {
		log.Printf("[MarketSync] Fetch failed: %v", err)
		return
	}

	updated := 0
	for _, entry := range entries {
		if entry.Crop == "" || entry.Mandi == "" {
			continue
		}
		price := &domain.MarketPrice{
			Crop:  entry.Crop,
			Mandi: entry.Mandi,
			Price: entry.Price,
			Trend: entry.Trend,
		}
		if err := s.repo.Upsert(price); err != nil {
			log.Printf("[MarketSync] Upsert failed for %s/%s: %v", entry.Crop, entry.Mandi, err)
			continue
		}
		updated++
	}
	log.Printf("[MarketSync] Updated %d of %d price entries", updated, len(entries))
}

func (s *PriceSyncScheduler) fetchFeed() ([]feedEntry, error) {
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
