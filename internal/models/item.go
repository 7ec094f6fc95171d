package models

// ItemType identifies what kind of item a stack holds
type ItemType string

const (
	// ItemTypeNone is the "no item" sentinel. Stacks of this type are never granted.
	ItemTypeNone ItemType = "none"
)

// DefaultMaxStack is used when a stack does not declare its own limit
const DefaultMaxStack = 64

// ItemStack is a quantity of a single item type, optionally decorated
type ItemStack struct {
	// Type is the item type of the stack
	Type ItemType

	// Quantity is the number of items in the stack
	Quantity int

	// MaxStack is the most items of this type a single slot can hold (0 means DefaultMaxStack)
	MaxStack int

	// DisplayName is the custom name shown for the stack, if any
	DisplayName string

	// Lore is the custom description lines shown for the stack, if any
	Lore []string
}

// IsNone reports whether the stack is empty or holds the "no item" sentinel
func (s *ItemStack) IsNone() bool {
	return s == nil || s.Type == "" || s.Type == ItemTypeNone || s.Quantity <= 0
}

// Limit returns the effective per-slot limit for the stack
func (s *ItemStack) Limit() int {
	if s.MaxStack <= 0 {
		return DefaultMaxStack
	}
	return s.MaxStack
}

// Clone returns a deep copy of the stack
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}

	clone := *s
	if s.Lore != nil {
		clone.Lore = make([]string, len(s.Lore))
		copy(clone.Lore, s.Lore)
	}

	return &clone
}

// CanStackWith reports whether the two stacks may share a slot
func (s *ItemStack) CanStackWith(other *ItemStack) bool {
	if s == nil || other == nil {
		return false
	}

	if s.Type != other.Type || s.DisplayName != other.DisplayName || s.Limit() != other.Limit() {
		return false
	}

	if len(s.Lore) != len(other.Lore) {
		return false
	}
	for i := range s.Lore {
		if s.Lore[i] != other.Lore[i] {
			return false
		}
	}

	return true
}

// Equal reports whether two stacks hold the same items in the same quantity
func (s *ItemStack) Equal(other *ItemStack) bool {
	if s.IsNone() || other.IsNone() {
		return s.IsNone() && other.IsNone()
	}
	return s.Quantity == other.Quantity && s.CanStackWith(other)
}

// CloneStacks deep copies a list of stacks
func CloneStacks(stacks []*ItemStack) []*ItemStack {
	if stacks == nil {
		return nil
	}

	clones := make([]*ItemStack, len(stacks))
	for i, stack := range stacks {
		clones[i] = stack.Clone()
	}

	return clones
}
