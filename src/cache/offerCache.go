package cache

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const offerLeaderKeyPrefix = "cache:au:offer:leader:"

type OfferLeader struct {
	Bidder string          `json:"bidder"`
	Amount decimal.Decimal `json:"amount"`
}

func genOfferLeaderKey(offerID int64) string {
	return fmt.Sprintf("%s%d", offerLeaderKeyPrefix, offerID)
}

// CacheOfferLeader stores the current leader snapshot of an offer.
func (cached *Cached) CacheOfferLeader(offerID int64, bidder string, amount decimal.Decimal) error {
	if cached.KvStore == nil {
		return nil
	}
	raw, err := json.Marshal(&OfferLeader{Bidder: bidder, Amount: amount})
	if err != nil {
		return errors.Wrap(err, "failed on marshal offer leader")
	}
	if err := cached.KvStore.Set(genOfferLeaderKey(offerID), string(raw)); err != nil {
		return errors.Wrap(err, "failed on set offer leader")
	}
	return nil
}

// GetOfferLeader returns the cached leader snapshot, or nil on a miss.
func (cached *Cached) GetOfferLeader(offerID int64) (*OfferLeader, error) {
	if cached.KvStore == nil {
		return nil, nil
	}
	raw, err := cached.KvStore.Get(genOfferLeaderKey(offerID))
	if err != nil {
		return nil, errors.Wrap(err, "failed on get offer leader")
	}
	if raw == "" {
		return nil, nil
	}
	var leader OfferLeader
	if err := json.Unmarshal([]byte(raw), &leader); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal offer leader")
	}
	return &leader, nil
}
