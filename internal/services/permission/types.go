package permission

import (
	"strings"

	"github.com/KirkDiggler/kits/internal/models"
	permissionRepo "github.com/KirkDiggler/kits/internal/repositories/permission"
	"github.com/sirupsen/logrus"
)

// Tristate is the resolved value of a permission node
type Tristate int

const (
	Undefined Tristate = iota
	True
	False
)

// String returns the name of the value
func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// Permission nodes used by the kit engine
const (
	// KitExemptOneTime lets a player redeem one-time kits again
	KitExemptOneTime = "kits.exempt.onetime"

	// KitExemptCooldown lets a player ignore kit cooldowns
	KitExemptCooldown = "kits.exempt.cooldown"

	// KitAdmin allows creating, editing and resetting kits
	KitAdmin = "kits.admin"

	kitPermissionPrefix = "kits.kit."

	wildcard = "*"
)

// KitPermission returns the node that allows redeeming the named kit
func KitPermission(kitName string) string {
	return kitPermissionPrefix + models.KitKey(kitName)
}

// lineage returns the node followed by each of its parents, most specific first
func lineage(node string) []string {
	node = strings.ToLower(node)
	nodes := []string{node}
	for {
		i := strings.LastIndex(node, ".")
		if i < 0 {
			break
		}
		node = node[:i]
		nodes = append(nodes, node)
	}
	return append(nodes, wildcard)
}

// Config holds configuration for the permission service
type Config struct {
	Repository permissionRepo.Repository
	Logger     logrus.FieldLogger
}
