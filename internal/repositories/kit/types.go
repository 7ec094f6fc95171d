package kit

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
)

type GetKitsInput struct {
}

type GetKitsOutput struct {
	// Kits by lowercased name
	Kits map[string]*models.Kit
}

type SaveKitInput struct {
	Kit *models.Kit
}

type DeleteKitInput struct {
	Name string
}

type DeleteKitOutput struct {
	Deleted bool
}

// storedKit is the persisted form of a kit, shared by every backend
type storedKit struct {
	Name              string        `json:"name"`
	Stacks            []storedStack `json:"stacks,omitempty"`
	Commands          []string      `json:"commands,omitempty"`
	Cooldown          string        `json:"cooldown,omitempty"`
	OneTime           bool          `json:"oneTime,omitempty"`
	Hidden            bool          `json:"hidden,omitempty"`
	FirstJoin         bool          `json:"firstJoin,omitempty"`
	AutoRedeem        bool          `json:"autoRedeem,omitempty"`
	Cost              float64       `json:"cost,omitempty"`
	IgnoresPermission bool          `json:"ignoresPermission,omitempty"`
}

type storedStack struct {
	Type        string   `json:"type"`
	Quantity    int      `json:"quantity"`
	MaxStack    int      `json:"maxStack,omitempty"`
	DisplayName string   `json:"displayName,omitempty"`
	Lore        []string `json:"lore,omitempty"`
}

func toStored(k *models.Kit) *storedKit {
	stored := &storedKit{
		Name:              k.Name,
		Commands:          k.Commands,
		OneTime:           k.OneTime,
		Hidden:            k.Hidden,
		FirstJoin:         k.FirstJoin,
		AutoRedeem:        k.AutoRedeem,
		Cost:              k.Cost,
		IgnoresPermission: k.IgnoresPermission,
	}

	if k.Cooldown != nil {
		stored.Cooldown = k.Cooldown.String()
	}

	for _, stack := range k.Stacks {
		if stack == nil {
			continue
		}
		stored.Stacks = append(stored.Stacks, storedStack{
			Type:        string(stack.Type),
			Quantity:    stack.Quantity,
			MaxStack:    stack.MaxStack,
			DisplayName: stack.DisplayName,
			Lore:        stack.Lore,
		})
	}

	return stored
}

func fromStored(s *storedKit) (*models.Kit, error) {
	k := models.NewKit(s.Name)
	k.OneTime = s.OneTime
	k.Hidden = s.Hidden
	k.FirstJoin = s.FirstJoin
	k.AutoRedeem = s.AutoRedeem
	k.Cost = s.Cost
	k.IgnoresPermission = s.IgnoresPermission

	if s.Commands != nil {
		k.Commands = s.Commands
	}

	if s.Cooldown != "" {
		cooldown, err := time.ParseDuration(s.Cooldown)
		if err != nil {
			return nil, fmt.Errorf("invalid cooldown %q for kit %s: %w", s.Cooldown, s.Name, err)
		}
		k.Cooldown = &cooldown
	}

	for _, stack := range s.Stacks {
		k.Stacks = append(k.Stacks, &models.ItemStack{
			Type:        models.ItemType(stack.Type),
			Quantity:    stack.Quantity,
			MaxStack:    stack.MaxStack,
			DisplayName: stack.DisplayName,
			Lore:        stack.Lore,
		})
	}

	return k, nil
}
