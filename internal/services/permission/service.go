package permission

import (
	"context"
	"errors"

	"github.com/KirkDiggler/kits/internal/common/logging"
	permissionRepo "github.com/KirkDiggler/kits/internal/repositories/permission"
	"github.com/sirupsen/logrus"
)

// service resolves nodes stored in the permission repository. The most
// specific grant or denial wins; a denial beats a grant on the same node.
type service struct {
	repo   permissionRepo.Repository
	logger logrus.FieldLogger
}

// New creates a permission service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("permission repository cannot be nil")
	}

	return &service{
		repo:   cfg.Repository,
		logger: logging.OrDefault(cfg.Logger),
	}, nil
}

// HasPermission reports whether the node resolves to granted
func (s *service) HasPermission(ctx context.Context, playerID, node string) bool {
	return s.Permission(ctx, playerID, node) == True
}

// Permission resolves a node to granted, denied or undefined. Lookup
// failures resolve to undefined.
func (s *service) Permission(ctx context.Context, playerID, node string) Tristate {
	output, err := s.repo.GetPermissions(ctx, &permissionRepo.GetPermissionsInput{
		PlayerID: playerID,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"player_id": playerID,
			"node":      node,
		}).Warn("permission lookup failed")
		return Undefined
	}

	granted := toSet(output.Granted)
	denied := toSet(output.Denied)

	for _, candidate := range lineage(node) {
		if _, ok := denied[candidate]; ok {
			return False
		}
		if _, ok := granted[candidate]; ok {
			return True
		}
	}

	return Undefined
}

func toSet(nodes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		set[node] = struct{}{}
	}
	return set
}
