package engine

import "github.com/pkg/errors"

// Domain errors. Every failure aborts its operation with zero state
// mutation; none are retried internally.
var (
	// validation errors (caller's fault, no state change)
	ErrDuplicateOffer   = errors.New("offer for this asset already exists")
	ErrFeeTooHigh       = errors.New("fee is too high")
	ErrInvalidAddress   = errors.New("wrong artist or beneficiary address")
	ErrInvalidBidRange  = errors.New("max bid must be equal or bigger than min bid")
	ErrEndInPast        = errors.New("end timestamp can not be in past")
	ErrEndBeforeStart   = errors.New("end timestamp must be bigger than start timestamp")
	ErrBelowMinBid      = errors.New("amount must be equal or bigger than min bid")
	ErrBelowCurrentBid  = errors.New("amount must be bigger than current bid")
	ErrMaxBidReached    = errors.New("max bid already placed")
	ErrAssetNotApproved = errors.New("asset is not approved for escrow")

	// state errors (operation inapplicable to current lifecycle phase)
	ErrOfferNotFound    = errors.New("offer does not exist")
	ErrOfferNotActive   = errors.New("offer is not active")
	ErrOfferEnded       = errors.New("offer has ended")
	ErrOfferNotStarted  = errors.New("offer has not started")
	ErrOfferStillActive = errors.New("offer is active")

	// access errors
	ErrAdminOnly         = errors.New("admin only")
	ErrArtistOrAdminOnly = errors.New("artist or admin only")
	ErrPaused            = errors.New("paused")
	ErrNotPaused         = errors.New("not paused")
	ErrUnknownRole       = errors.New("unknown role")

	// ledger errors
	ErrNoRefundFound = errors.New("no funds found for refund")
)

var domainErrs = map[error]struct{}{
	ErrDuplicateOffer:    {},
	ErrFeeTooHigh:        {},
	ErrInvalidAddress:    {},
	ErrInvalidBidRange:   {},
	ErrEndInPast:         {},
	ErrEndBeforeStart:    {},
	ErrBelowMinBid:       {},
	ErrBelowCurrentBid:   {},
	ErrMaxBidReached:     {},
	ErrAssetNotApproved:  {},
	ErrOfferNotFound:     {},
	ErrOfferNotActive:    {},
	ErrOfferEnded:        {},
	ErrOfferNotStarted:   {},
	ErrOfferStillActive:  {},
	ErrAdminOnly:         {},
	ErrArtistOrAdminOnly: {},
	ErrPaused:            {},
	ErrNotPaused:         {},
	ErrUnknownRole:       {},
	ErrNoRefundFound:     {},
}

// IsDomainError reports whether err is one of the engine's business
// failures, as opposed to an infrastructure fault.
func IsDomainError(err error) bool {
	for e := range domainErrs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
