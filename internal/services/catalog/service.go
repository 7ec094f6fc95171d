// Package catalog keeps the kit registry in memory and in storage.
package catalog

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/KirkDiggler/kits/internal/models"
	kitRepo "github.com/KirkDiggler/kits/internal/repositories/kit"
	"github.com/sirupsen/logrus"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

type kitMap map[string]*models.Kit

// Config holds configuration for the catalog
type Config struct {
	Repository kitRepo.Repository
	Logger     logrus.FieldLogger
}

// service keeps an immutable map behind an atomic pointer. Readers never
// lock; writers serialize on writeMu and publish a fresh copy.
type service struct {
	repo   kitRepo.Repository
	logger logrus.FieldLogger

	kits    atomic.Pointer[kitMap]
	writeMu sync.Mutex
}

// New creates an empty catalog. Call Load to read stored kits.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	s := &service{
		repo:   cfg.Repository,
		logger: logging.OrDefault(cfg.Logger),
	}
	s.kits.Store(&kitMap{})

	return s, nil
}

func (s *service) current() kitMap {
	return *s.kits.Load()
}

// replace publishes a copy of the current map with the change applied
func (s *service) replace(change func(kitMap)) {
	next := make(kitMap, len(s.current())+1)
	for k, v := range s.current() {
		next[k] = v
	}
	change(next)
	s.kits.Store(&next)
}

// Load replaces the catalog with what the repository holds
func (s *service) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	output, err := s.repo.GetKits(ctx, &kitRepo.GetKitsInput{})
	if err != nil {
		return fmt.Errorf("failed to load kits: %w", err)
	}

	loaded := make(kitMap, len(output.Kits))
	for _, kit := range output.Kits {
		loaded[kit.Key()] = kit
	}
	s.kits.Store(&loaded)

	s.logger.WithField("kits", len(loaded)).Info("kit catalog loaded")
	return nil
}

// CreateKit adds an empty kit under name
func (s *service) CreateKit(ctx context.Context, name string) (*models.Kit, error) {
	if !validName.MatchString(name) {
		return nil, ErrInvalidKitName
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, exists := s.current()[models.KitKey(name)]; exists {
		return nil, ErrKitAlreadyExists
	}

	kit := models.NewKit(name)
	if err := s.repo.SaveKit(ctx, &kitRepo.SaveKitInput{Kit: kit}); err != nil {
		return nil, fmt.Errorf("failed to create kit: %w", err)
	}

	s.replace(func(m kitMap) { m[kit.Key()] = kit })

	return kit.Clone(), nil
}

// RenameKit copies the kit to newName and then deletes oldName. A rename
// that only changes case keeps the same entry.
func (s *service) RenameKit(ctx context.Context, oldName, newName string) error {
	if !validName.MatchString(newName) {
		return ErrInvalidKitName
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	oldKey, newKey := models.KitKey(oldName), models.KitKey(newName)

	existing, ok := s.current()[oldKey]
	if !ok {
		return ErrKitNotFound
	}

	if _, taken := s.current()[newKey]; taken && newKey != oldKey {
		return ErrKitNameTaken
	}

	renamed := existing.Renamed(newName)
	if err := s.repo.SaveKit(ctx, &kitRepo.SaveKitInput{Kit: renamed}); err != nil {
		return fmt.Errorf("failed to save renamed kit: %w", err)
	}

	if newKey != oldKey {
		if _, err := s.repo.DeleteKit(ctx, &kitRepo.DeleteKitInput{Name: oldName}); err != nil {
			return fmt.Errorf("failed to delete old kit: %w", err)
		}
	}

	s.replace(func(m kitMap) {
		delete(m, oldKey)
		m[newKey] = renamed
	})

	return nil
}

// RemoveKit deletes the kit. Storage failures are logged and reported as
// nothing removed.
func (s *service) RemoveKit(ctx context.Context, name string) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key := models.KitKey(name)

	output, err := s.repo.DeleteKit(ctx, &kitRepo.DeleteKitInput{Name: name})
	if err != nil {
		s.logger.WithError(err).WithField("kit", key).Error("could not update kits")
		return false
	}

	_, cached := s.current()[key]
	if cached {
		s.replace(func(m kitMap) { delete(m, key) })
	}

	return output.Deleted || cached
}

// SaveKit stores a copy of the kit
func (s *service) SaveKit(ctx context.Context, kit *models.Kit) error {
	if kit == nil || !validName.MatchString(kit.Name) {
		return ErrInvalidKitName
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stored := kit.Clone()
	if err := s.repo.SaveKit(ctx, &kitRepo.SaveKitInput{Kit: stored}); err != nil {
		return fmt.Errorf("failed to save kit: %w", err)
	}

	s.replace(func(m kitMap) { m[stored.Key()] = stored })

	return nil
}

// GetKit returns a copy of the kit, so callers hold a value snapshot
func (s *service) GetKit(name string) (*models.Kit, bool) {
	kit, ok := s.current()[models.KitKey(name)]
	if !ok {
		return nil, false
	}
	return kit.Clone(), true
}

// KitNames returns the sorted names of listed kits
func (s *service) KitNames(showHidden bool) []string {
	names := []string{}
	for _, kit := range s.current() {
		if !showHidden && (kit.Hidden || kit.FirstJoin) {
			continue
		}
		names = append(names, kit.Name)
	}
	sort.Strings(names)
	return names
}

// FirstJoinKits returns copies of the first-join kits, sorted by name
func (s *service) FirstJoinKits() []*models.Kit {
	return s.filter(func(k *models.Kit) bool { return k.FirstJoin })
}

// AutoRedeemable returns copies of the free auto-redeem kits, sorted by name
func (s *service) AutoRedeemable() []*models.Kit {
	return s.filter(func(k *models.Kit) bool { return k.AutoRedeem && k.Cost <= 0 })
}

func (s *service) filter(keep func(*models.Kit) bool) []*models.Kit {
	kits := []*models.Kit{}
	for _, kit := range s.current() {
		if keep(kit) {
			kits = append(kits, kit.Clone())
		}
	}
	sort.Slice(kits, func(i, j int) bool { return kits[i].Key() < kits[j].Key() })
	return kits
}
