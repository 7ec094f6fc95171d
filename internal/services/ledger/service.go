package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/KirkDiggler/kits/internal/models"
	redemptionRepo "github.com/KirkDiggler/kits/internal/repositories/redemption"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type service struct {
	repo         redemptionRepo.Repository
	logger       logrus.FieldLogger
	writeTimeout time.Duration

	loads singleflight.Group

	mu    sync.Mutex
	cache map[string]models.RedemptionRecord

	// unwritten holds redemptions storage may not have yet, by player and kit
	unwritten map[string]map[string]*pendingWrite

	// loading counts repository reads in flight per player
	loading map[string]int

	pending sync.WaitGroup
}

// New creates a ledger over the redemption repository
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("redemption repository cannot be nil")
	}

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}

	return &service{
		repo:         cfg.Repository,
		logger:       logging.OrDefault(cfg.Logger),
		writeTimeout: writeTimeout,
		cache:        make(map[string]models.RedemptionRecord),
		unwritten:    make(map[string]map[string]*pendingWrite),
		loading:      make(map[string]int),
	}, nil
}

// Get returns a copy of the player's record. Concurrent first loads for the
// same player share one repository read.
func (s *service) Get(ctx context.Context, playerID string) (models.RedemptionRecord, error) {
	if playerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	s.mu.Lock()
	record, ok := s.cache[playerID]
	if ok {
		record = record.Clone()
	}
	s.mu.Unlock()
	if ok {
		return record, nil
	}

	loaded, err, _ := s.loads.Do(playerID, func() (interface{}, error) {
		s.mu.Lock()
		s.loading[playerID]++
		s.mu.Unlock()

		output, err := s.repo.GetRedemptions(ctx, &redemptionRepo.GetRedemptionsInput{
			PlayerID: playerID,
		})

		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.loaded(playerID)

		if err != nil {
			return nil, err
		}

		if cached, ok := s.cache[playerID]; ok {
			return cached.Clone(), nil
		}

		record := output.Record
		if record == nil {
			record = models.RedemptionRecord{}
		}

		// Storage may not have seen recent redemptions yet
		for key, w := range s.unwritten[playerID] {
			if stored, ok := record[key]; !ok || w.at.After(stored) {
				record[key] = w.at
			}
		}

		s.cache[playerID] = record
		return record.Clone(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load redemptions: %w", err)
	}

	return loaded.(models.RedemptionRecord).Clone(), nil
}

// Set records a redemption in the cache and persists it in the background.
// Callers are not told about write failures; they are logged.
func (s *service) Set(ctx context.Context, playerID, kitName string, at time.Time) {
	key := models.KitKey(kitName)

	s.mu.Lock()
	if record, ok := s.cache[playerID]; ok {
		record[key] = at
	}
	if s.unwritten[playerID] == nil {
		s.unwritten[playerID] = make(map[string]*pendingWrite)
	}
	s.unwritten[playerID][key] = &pendingWrite{at: at}
	s.mu.Unlock()

	writeCtx := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(writeCtx, s.writeTimeout)
		defer cancel()

		err := s.repo.SetRedemptions(ctx, &redemptionRepo.SetRedemptionsInput{
			PlayerID: playerID,
			Record:   models.RedemptionRecord{key: at},
		})
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"player_id": playerID,
				"kit":       key,
			}).Error("failed to persist redemption")
			return
		}

		s.written(playerID, key, at)
	}()
}

// Clear forgets a redemption. Pending background writes are flushed first
// so an earlier Set cannot bring the entry back.
func (s *service) Clear(ctx context.Context, playerID, kitName string) error {
	key := models.KitKey(kitName)

	s.Flush()

	s.mu.Lock()
	if record, ok := s.cache[playerID]; ok {
		delete(record, key)
	}
	s.forget(playerID, key)
	s.mu.Unlock()

	err := s.repo.ClearRedemption(ctx, &redemptionRepo.ClearRedemptionInput{
		PlayerID: playerID,
		KitName:  key,
	})
	if err != nil {
		return fmt.Errorf("failed to clear redemption: %w", err)
	}

	return nil
}

// Flush waits for background writes
func (s *service) Flush() {
	s.pending.Wait()
}

// written drops an unwritten entry once storage holds it, unless a newer Set
// replaced it. While a read is in flight the entry is only marked, since the
// read may have started before the write.
func (s *service) written(playerID, key string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.unwritten[playerID][key]
	if !ok || !w.at.Equal(at) {
		return
	}

	if s.loading[playerID] > 0 {
		w.landed = true
		return
	}
	s.forget(playerID, key)
}

// loaded ends a repository read and drops entries that landed during it; s.mu must be held
func (s *service) loaded(playerID string) {
	s.loading[playerID]--
	if s.loading[playerID] > 0 {
		return
	}
	delete(s.loading, playerID)

	for key, w := range s.unwritten[playerID] {
		if w.landed {
			s.forget(playerID, key)
		}
	}
}

// forget removes an unwritten entry; s.mu must be held
func (s *service) forget(playerID, key string) {
	record, ok := s.unwritten[playerID]
	if !ok {
		return
	}
	delete(record, key)
	if len(record) == 0 {
		delete(s.unwritten, playerID)
	}
}

// Evict drops a player's cached record when their session ends. Redemptions
// still being written are kept and merged into the next load.
func (s *service) Evict(playerID string) {
	s.mu.Lock()
	delete(s.cache, playerID)
	s.mu.Unlock()
	s.loads.Forget(playerID)
}
