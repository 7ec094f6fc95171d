package kit

// KitError is a custom error type for kit redemption errors
type KitError string

// Error implements the error interface
func (e KitError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput         KitError = "input cannot be nil"
	ErrNilKit           KitError = "kit cannot be nil"
	ErrNilPlayer        KitError = "player cannot be nil"
	ErrNilInventory     KitError = "player inventory cannot be nil"
	ErrEmptyPlayerID    KitError = "player ID cannot be empty"
	ErrNilConfig        KitError = "config cannot be nil"
	ErrNilLedger        KitError = "ledger cannot be nil"
	ErrNilEligibility   KitError = "eligibility checker cannot be nil"
	ErrNilGranter       KitError = "granter cannot be nil"
	ErrNilEvents        KitError = "event dispatcher cannot be nil"
	ErrNilCommands      KitError = "command executor cannot be nil"
	ErrNilClock         KitError = "clock cannot be nil"
	ErrNilUUIDGenerator KitError = "UUID generator cannot be nil"
)
