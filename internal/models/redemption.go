package models

import "time"

// RedeemStatus is the outcome of a kit redemption
type RedeemStatus string

const (
	// RedeemStatusSuccess indicates every item was granted
	RedeemStatusSuccess RedeemStatus = "SUCCESS"

	// RedeemStatusPartialSuccess indicates some items were granted and some rejected
	RedeemStatusPartialSuccess RedeemStatus = "PARTIAL_SUCCESS"

	// RedeemStatusAlreadyRedeemedOneTime indicates a one-time kit was redeemed before
	RedeemStatusAlreadyRedeemedOneTime RedeemStatus = "ALREADY_REDEEMED_ONE_TIME"

	// RedeemStatusCooldownNotExpired indicates the kit's cooldown is still running
	RedeemStatusCooldownNotExpired RedeemStatus = "COOLDOWN_NOT_EXPIRED"

	// RedeemStatusNoSpace indicates an all-or-nothing grant did not fit and was rolled back
	RedeemStatusNoSpace RedeemStatus = "NO_SPACE"

	// RedeemStatusPreEventCancelled indicates a pre-redeem hook vetoed the redemption
	RedeemStatusPreEventCancelled RedeemStatus = "PRE_EVENT_CANCELLED"

	// RedeemStatusUnknown indicates nothing was granted with no more specific cause
	RedeemStatusUnknown RedeemStatus = "UNKNOWN"
)

// IsSuccess reports whether the status counts as a redemption
func (s RedeemStatus) IsSuccess() bool {
	return s == RedeemStatusSuccess || s == RedeemStatusPartialSuccess
}

// RedemptionRecord maps a lowercased kit name to when the player last redeemed it
type RedemptionRecord map[string]time.Time

// LastRedeemed returns when the kit was last redeemed, or nil
func (r RedemptionRecord) LastRedeemed(kitName string) *time.Time {
	t, ok := r[KitKey(kitName)]
	if !ok {
		return nil
	}
	return &t
}

// Clone copies the record
func (r RedemptionRecord) Clone() RedemptionRecord {
	clone := make(RedemptionRecord, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// RedeemResult describes what happened during a redemption
type RedeemResult struct {
	// Status is the outcome of the redemption
	Status RedeemStatus

	// RejectedItems are the items that did not fit, in grant order
	RejectedItems []*ItemStack

	// NextCooldownExpiry is when the kit can next be redeemed, if restricted
	NextCooldownExpiry *time.Time

	// CancelMessage is the message supplied by a vetoing hook, if any
	CancelMessage *string
}

// IsSuccess reports whether the kit was redeemed
func (r *RedeemResult) IsSuccess() bool {
	return r != nil && r.Status.IsSuccess()
}
