// Package grant puts kit items into player inventories.
package grant

import (
	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/KirkDiggler/kits/internal/models"
	"github.com/sirupsen/logrus"
)

// Inventory is the slot storage a grant writes into
type Inventory interface {
	Capacity() int
	Peek(slot int) *models.ItemStack
	Set(slot int, stack *models.ItemStack)
	Offer(stack *models.ItemStack) *models.ItemStack
}

// Config holds configuration for the transaction
type Config struct {
	// ProcessTokens enables {{...}} resolution in item names and lore
	ProcessTokens bool

	// Tokens resolves item tokens, NewTokenResolver() if nil
	Tokens *TokenResolver

	Logger logrus.FieldLogger
}

// Outcome is the result of applying a list of items to an inventory
type Outcome struct {
	// InsertedAny is true when at least one item landed in the inventory
	InsertedAny bool

	// Rejected holds what did not fit, in grant order
	Rejected []*models.ItemStack

	// RolledBack is true when the inventory was restored after a rejection
	RolledBack bool
}

// Transaction grants items with optional all-or-nothing semantics
type Transaction struct {
	processTokens bool
	tokens        *TokenResolver
	logger        logrus.FieldLogger
}

// New creates a Transaction
func New(cfg *Config) *Transaction {
	if cfg == nil {
		cfg = &Config{}
	}

	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewTokenResolver()
	}

	return &Transaction{
		processTokens: cfg.ProcessTokens,
		tokens:        tokens,
		logger:        logging.OrDefault(cfg.Logger),
	}
}

// Resolve copies the kit's stacks for a recipient, dropping empty stacks and
// filling tokens when enabled
func (t *Transaction) Resolve(kit *models.Kit, player *models.Player) []*models.ItemStack {
	items := make([]*models.ItemStack, 0, len(kit.Stacks))
	for _, stack := range kit.Stacks {
		if stack.IsNone() {
			continue
		}
		if t.processTokens {
			items = append(items, t.tokens.ResolveStack(stack, kit, player))
			continue
		}
		items = append(items, stack.Clone())
	}
	return items
}

// Grant offers each item to the inventory in order. Empty stacks are
// skipped and never reported as rejected.
func (t *Transaction) Grant(inv Inventory, items []*models.ItemStack) (bool, []*models.ItemStack) {
	insertedAny := false
	rejected := []*models.ItemStack{}

	for _, item := range items {
		if item.IsNone() {
			continue
		}

		remainder := inv.Offer(item)
		if remainder == nil || remainder.Quantity < item.Quantity {
			insertedAny = true
		}
		if remainder != nil {
			rejected = append(rejected, remainder)
		}
	}

	return insertedAny, rejected
}

// Apply grants the items. With mustGetAll outside a first join, any
// rejection puts every slot back the way it was.
func (t *Transaction) Apply(inv Inventory, items []*models.ItemStack, mustGetAll, firstJoin bool) *Outcome {
	atomic := mustGetAll && !firstJoin

	var snapshot models.InventorySnapshot
	if atomic {
		snapshot = Snapshot(inv)
	}

	insertedAny, rejected := t.Grant(inv, items)
	outcome := &Outcome{
		InsertedAny: insertedAny,
		Rejected:    rejected,
	}

	if atomic && len(rejected) > 0 {
		Restore(inv, snapshot)
		outcome.RolledBack = true
		t.logger.WithField("rejected", len(rejected)).Debug("grant rolled back")
	}

	return outcome
}

// Snapshot copies every slot of the inventory
func Snapshot(inv Inventory) models.InventorySnapshot {
	snapshot := make(models.InventorySnapshot, inv.Capacity())
	for i := range snapshot {
		snapshot[i] = inv.Peek(i)
	}
	return snapshot
}

// Restore clears each slot and puts back its snapshot content
func Restore(inv Inventory, snapshot models.InventorySnapshot) {
	for i := 0; i < inv.Capacity(); i++ {
		inv.Set(i, nil)
		if i < len(snapshot) && snapshot[i] != nil {
			inv.Set(i, snapshot[i])
		}
	}
}
