// Package autoredeem grants kits when a player joins.
package autoredeem

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/KirkDiggler/kits/internal/models"
	playerRepo "github.com/KirkDiggler/kits/internal/repositories/player"
	"github.com/KirkDiggler/kits/internal/services/catalog"
	"github.com/KirkDiggler/kits/internal/services/kit"
	"github.com/KirkDiggler/kits/internal/services/permission"
	"github.com/KirkDiggler/kits/internal/services/player"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the auto-redeem service
type Config struct {
	Kits        kit.Service
	Catalog     catalog.Catalog
	Players     player.Service
	Joins       playerRepo.Repository
	Permissions permission.Checker
	Clock       clock.Clock
	Logger      logrus.FieldLogger

	// MustGetAll applies to auto-redeem kits; first-join kits never use it
	MustGetAll bool

	// AutoRedeemEnabled turns on redeeming auto-redeem kits at every join
	AutoRedeemEnabled bool

	// LogAutoRedeem logs each permission decision and outcome
	LogAutoRedeem bool
}

// OnJoinInput identifies the player who joined
type OnJoinInput struct {
	PlayerID    string
	Name        string
	DisplayName string
}

// OnJoinOutput holds the result of every kit attempted, by kit name
type OnJoinOutput struct {
	FirstJoin bool
	Results   map[string]*models.RedeemResult
}

// Service redeems first-join and auto-redeem kits
type Service struct {
	kits        kit.Service
	catalog     catalog.Catalog
	players     player.Service
	joins       playerRepo.Repository
	permissions permission.Checker
	clock       clock.Clock
	logger      logrus.FieldLogger

	mustGetAll        bool
	autoRedeemEnabled bool
	logAutoRedeem     bool
}

// New creates the auto-redeem service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Kits == nil {
		return nil, errors.New("kit service cannot be nil")
	}

	if cfg.Catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	if cfg.Players == nil {
		return nil, errors.New("player service cannot be nil")
	}

	if cfg.Joins == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.Permissions == nil {
		return nil, errors.New("permission checker cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &Service{
		kits:              cfg.Kits,
		catalog:           cfg.Catalog,
		players:           cfg.Players,
		joins:             cfg.Joins,
		permissions:       cfg.Permissions,
		clock:             cfg.Clock,
		logger:            logging.OrDefault(cfg.Logger),
		mustGetAll:        cfg.MustGetAll,
		autoRedeemEnabled: cfg.AutoRedeemEnabled,
		logAutoRedeem:     cfg.LogAutoRedeem,
	}, nil
}

// OnJoin grants first-join kits on a player's first join, then every free
// auto-redeem kit the player may use. The player is saved afterwards.
func (s *Service) OnJoin(ctx context.Context, input *OnJoinInput) (*OnJoinOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	joined, err := s.joins.MarkJoined(ctx, &playerRepo.MarkJoinedInput{
		PlayerID: input.PlayerID,
		JoinedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record join: %w", err)
	}

	p, err := s.players.LoadOrCreate(ctx, &player.LoadOrCreateInput{
		PlayerID:    input.PlayerID,
		Name:        input.Name,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	output := &OnJoinOutput{
		FirstJoin: joined.FirstJoin,
		Results:   make(map[string]*models.RedeemResult),
	}
	logger := s.logger.WithField("player_id", p.ID)

	if joined.FirstJoin {
		for _, k := range s.catalog.FirstJoinKits() {
			result, err := s.kits.RedeemKit(ctx, &kit.RedeemKitInput{
				Kit:       k,
				Player:    p,
				FirstJoin: true,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to redeem first join kit %s: %w", k.Name, err)
			}
			output.Results[k.Name] = result
			logger.WithFields(logrus.Fields{"kit": k.Name, "status": result.Status}).Info("first join kit redeemed")
		}
	}

	if s.autoRedeemEnabled {
		for _, k := range s.catalog.AutoRedeemable() {
			result, err := s.autoRedeem(ctx, logger, k, p)
			if err != nil {
				return nil, err
			}
			if result != nil {
				output.Results[k.Name] = result
			}
		}
	}

	if len(output.Results) > 0 {
		if err := s.players.Save(ctx, p); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// autoRedeem redeems one kit with every check on. It returns nil when the
// player lacks the kit's permission.
func (s *Service) autoRedeem(ctx context.Context, logger logrus.FieldLogger, k *models.Kit, p *models.Player) (*models.RedeemResult, error) {
	entry := logger.WithField("kit", k.Name)

	if k.IgnoresPermission {
		s.log(entry, "permission check bypassed")
	} else if node := permission.KitPermission(k.Name); s.permissions.HasPermission(ctx, p.ID, node) {
		s.log(entry.WithField("permission", node), "permission check passed")
	} else {
		return nil, nil
	}

	mustGetAll := s.mustGetAll
	result, err := s.kits.RedeemKit(ctx, &kit.RedeemKitInput{
		Kit:           k,
		Player:        p,
		CheckOneTime:  true,
		CheckCooldown: true,
		MustGetAll:    &mustGetAll,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to auto redeem kit %s: %w", k.Name, err)
	}

	if result.IsSuccess() {
		s.log(entry, "kit redeemed")
	} else if s.logAutoRedeem {
		entry.WithField("status", result.Status).Error("kit could not be redeemed")
	}

	return result, nil
}

func (s *Service) log(entry logrus.FieldLogger, message string) {
	if s.logAutoRedeem {
		entry.Info(message)
	}
}
