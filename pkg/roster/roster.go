package roster

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/classlab/helpdesk/pkg/sheets"
)

// Service caches the group roster read from a spreadsheet range.
type Service struct {
	client        *sheets.Client
	spreadsheetID string
	sheet         string
	rng           string

	mu     sync.RWMutex
	groups map[uint16]struct{}
	loaded bool
}

// New creates a roster service over the given spreadsheet range. The range
// is expected to hold one group number per row in its first column; cells
// that do not parse as a group number are skipped.
func New(client *sheets.Client, spreadsheetID, sheet, rng string) *Service {
	if client == nil {
		panic("roster: sheets client cannot be nil")
	}
	return &Service{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheet:         sheet,
		rng:           rng,
	}
}

// Known reports whether the group appears in the roster. The first call
// fetches the roster; subsequent calls answer from cache.
func (s *Service) Known(ctx context.Context, group uint16) (bool, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Refresh(ctx); err != nil {
			return false, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.groups[group]
	return ok, nil
}

// Refresh re-reads the roster range and atomically replaces the cache.
// The fetch happens outside the lock; concurrent lookups keep answering
// from the previous snapshot until the swap.
func (s *Service) Refresh(ctx context.Context) error {
	vr, err := s.client.Values(ctx, s.spreadsheetID, s.sheet, s.rng)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	groups := make(map[uint16]struct{}, len(vr.Values))
	for _, row := range vr.Values {
		if len(row) == 0 {
			continue
		}
		n, err := strconv.ParseUint(row[0], 10, 16)
		if err != nil {
			continue
		}
		groups[uint16(n)] = struct{}{}
	}

	s.mu.Lock()
	s.groups = groups
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Size reports the number of cached roster entries.
func (s *Service) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups)
}
