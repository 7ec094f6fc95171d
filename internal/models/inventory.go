package models

// DefaultInventorySize is the number of slots in a standard player inventory
const DefaultInventorySize = 36

// InventorySnapshot is the content of every slot of an inventory, by slot index.
// A nil entry is an empty slot.
type InventorySnapshot []*ItemStack

// Inventory is a fixed number of item slots
type Inventory struct {
	// Slots holds the stack in each slot; nil means the slot is empty
	Slots []*ItemStack
}

// NewInventory creates an empty inventory with the given number of slots
func NewInventory(size int) *Inventory {
	if size <= 0 {
		size = DefaultInventorySize
	}

	return &Inventory{
		Slots: make([]*ItemStack, size),
	}
}

// Capacity returns the number of slots
func (inv *Inventory) Capacity() int {
	return len(inv.Slots)
}

// Peek returns a copy of the stack in a slot, or nil
func (inv *Inventory) Peek(slot int) *ItemStack {
	if slot < 0 || slot >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[slot].Clone()
}

// Set replaces the content of a slot. A nil stack clears it.
func (inv *Inventory) Set(slot int, stack *ItemStack) {
	if slot < 0 || slot >= len(inv.Slots) {
		return
	}
	if stack.IsNone() {
		inv.Slots[slot] = nil
		return
	}
	inv.Slots[slot] = stack.Clone()
}

// Offer inserts as much of the stack as fits, topping up matching stacks
// before using empty slots. It returns what did not fit, or nil.
func (inv *Inventory) Offer(stack *ItemStack) *ItemStack {
	if stack.IsNone() {
		return nil
	}

	remaining := stack.Quantity
	limit := stack.Limit()

	for _, existing := range inv.Slots {
		if remaining == 0 {
			break
		}
		if existing == nil || !existing.CanStackWith(stack) {
			continue
		}
		space := limit - existing.Quantity
		if space <= 0 {
			continue
		}
		moved := min(space, remaining)
		existing.Quantity += moved
		remaining -= moved
	}

	for i := range inv.Slots {
		if remaining == 0 {
			break
		}
		if inv.Slots[i] != nil {
			continue
		}
		placed := stack.Clone()
		placed.Quantity = min(limit, remaining)
		inv.Slots[i] = placed
		remaining -= placed.Quantity
	}

	if remaining == 0 {
		return nil
	}

	rejected := stack.Clone()
	rejected.Quantity = remaining
	return rejected
}

// Snapshot copies every slot
func (inv *Inventory) Snapshot() InventorySnapshot {
	snapshot := make(InventorySnapshot, len(inv.Slots))
	for i, stack := range inv.Slots {
		snapshot[i] = stack.Clone()
	}
	return snapshot
}

// Count returns the total quantity of an item type across all slots
func (inv *Inventory) Count(itemType ItemType) int {
	total := 0
	for _, stack := range inv.Slots {
		if stack != nil && stack.Type == itemType {
			total += stack.Quantity
		}
	}
	return total
}

// Clone returns a deep copy of the inventory
func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return nil
	}
	return &Inventory{Slots: inv.Snapshot()}
}
