package ledger

import (
	"time"

	redemptionRepo "github.com/KirkDiggler/kits/internal/repositories/redemption"
	"github.com/sirupsen/logrus"
)

// DefaultWriteTimeout bounds a single background write
const DefaultWriteTimeout = 5 * time.Second

// Config holds configuration for the ledger
type Config struct {
	// Repository persists redemption records
	Repository redemptionRepo.Repository

	// Logger receives background write failures
	Logger logrus.FieldLogger

	// WriteTimeout bounds a single background write, DefaultWriteTimeout if zero
	WriteTimeout time.Duration
}

// pendingWrite is a redemption handed to a background write
type pendingWrite struct {
	at time.Time

	// landed is set when the write succeeded while a read was in flight
	landed bool
}
