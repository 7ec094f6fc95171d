package permission

import (
	"context"
)

// Repository defines the interface for per-player permission nodes.
// A node is either granted, denied, or unset.
type Repository interface {
	// GetPermissions retrieves the granted and denied nodes of a player
	GetPermissions(ctx context.Context, input *GetPermissionsInput) (*GetPermissionsOutput, error)

	// SetPermission grants or denies a node for a player
	SetPermission(ctx context.Context, input *SetPermissionInput) error

	// UnsetPermission removes any grant or denial of a node
	UnsetPermission(ctx context.Context, input *UnsetPermissionInput) error
}
