package permission

//go:generate mockgen -package=mocks -destination=mocks/mock_checker.go github.com/KirkDiggler/kits/internal/services/permission Checker

import "context"

// Checker answers permission queries for players
type Checker interface {
	// HasPermission reports whether the node resolves to granted
	HasPermission(ctx context.Context, playerID, node string) bool

	// Permission resolves a node to granted, denied or undefined
	Permission(ctx context.Context, playerID, node string) Tristate
}
