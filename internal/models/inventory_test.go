package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryOfferTopsUpBeforeEmptySlots(t *testing.T) {
	inv := NewInventory(3)
	inv.Set(1, &ItemStack{Type: "bread", Quantity: 60})

	rejected := inv.Offer(&ItemStack{Type: "bread", Quantity: 10})

	assert.Nil(t, rejected)
	assert.Equal(t, 64, inv.Slots[1].Quantity)
	require.NotNil(t, inv.Slots[0])
	assert.Equal(t, 6, inv.Slots[0].Quantity)
	assert.Nil(t, inv.Slots[2])
}

func TestInventoryOfferReturnsRemainder(t *testing.T) {
	inv := NewInventory(1)

	rejected := inv.Offer(&ItemStack{Type: "arrow", Quantity: 100})

	require.NotNil(t, rejected)
	assert.Equal(t, 36, rejected.Quantity)
	assert.Equal(t, 64, inv.Count("arrow"))
}

func TestInventoryOfferIgnoresNone(t *testing.T) {
	inv := NewInventory(1)

	assert.Nil(t, inv.Offer(&ItemStack{Type: ItemTypeNone, Quantity: 1}))
	assert.Nil(t, inv.Slots[0])
}

func TestInventoryOfferKeepsDecoratedStacksApart(t *testing.T) {
	inv := NewInventory(2)
	inv.Set(0, &ItemStack{Type: "sword", Quantity: 1, MaxStack: 1})

	rejected := inv.Offer(&ItemStack{Type: "sword", Quantity: 1, MaxStack: 1, DisplayName: "Excalibur"})

	assert.Nil(t, rejected)
	assert.Equal(t, "Excalibur", inv.Slots[1].DisplayName)
}

func TestInventorySnapshotIsDetached(t *testing.T) {
	inv := NewInventory(1)
	inv.Set(0, &ItemStack{Type: "stone", Quantity: 5})

	snapshot := inv.Snapshot()
	inv.Slots[0].Quantity = 1

	assert.Equal(t, 5, snapshot[0].Quantity)
}

func TestKitCloneIsDeep(t *testing.T) {
	cooldown := 60 * time.Second
	kit := &Kit{
		Name:     "Starter",
		Stacks:   []*ItemStack{{Type: "bread", Quantity: 3, Lore: []string{"fresh"}}},
		Commands: []string{"say hi"},
		Cooldown: &cooldown,
	}

	clone := kit.Clone()
	clone.Stacks[0].Lore[0] = "stale"
	clone.Commands[0] = "say bye"
	*clone.Cooldown = 0

	assert.Equal(t, "fresh", kit.Stacks[0].Lore[0])
	assert.Equal(t, "say hi", kit.Commands[0])
	assert.Equal(t, 60*time.Second, *kit.Cooldown)
	assert.Equal(t, "starter", clone.Key())
}

func TestItemStackEqual(t *testing.T) {
	assert.True(t, (*ItemStack)(nil).Equal(&ItemStack{Type: ItemTypeNone, Quantity: 1}))
	assert.True(t, (&ItemStack{Type: "a", Quantity: 2}).Equal(&ItemStack{Type: "a", Quantity: 2}))
	assert.False(t, (&ItemStack{Type: "a", Quantity: 2}).Equal(&ItemStack{Type: "a", Quantity: 3}))
}
