package permission

type GetPermissionsInput struct {
	PlayerID string
}

type GetPermissionsOutput struct {
	Granted []string
	Denied  []string
}

type SetPermissionInput struct {
	PlayerID string
	Node     string
	// Value grants the node when true and denies it when false
	Value bool
}

type UnsetPermissionInput struct {
	PlayerID string
	Node     string
}
