package dao

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const CacheActivityNumPrefix = "cache:au:activity:count:"

type activityCountCache struct {
	OfferID    int64    `json:"offer_id"`
	EventTypes []string `json:"event_types"`
}

func getActivityCountCacheKey(filter *activityCountCache) (string, error) {
	uid, err := json.Marshal(filter)
	if err != nil {
		return "", errors.Wrap(err, "failed on marshal activity count filter")
	}
	return CacheActivityNumPrefix + string(uid), nil
}

// AddActivity journals one observable event.
func (d *Dao) AddActivity(ctx context.Context, offerID int64, assetID, eventType, actor string, amount decimal.Decimal) error {
	activity := &model.Activity{
		ID:         uuid.NewString(),
		OfferID:    offerID,
		AssetID:    assetID,
		EventType:  eventType,
		Actor:      actor,
		Amount:     amount,
		CreateTime: time.Now().UnixMilli(),
	}
	if err := d.DB.WithContext(ctx).Table(model.ActivityTableName()).Create(activity).Error; err != nil {
		return errors.Wrap(err, "failed on add activity")
	}
	return nil
}

// QueryActivities lists the event journal newest first, optionally filtered
// by offer and event types. The total count is served from redis for 30s to
// keep the hot listing endpoint off the count query.
func (d *Dao) QueryActivities(ctx context.Context, offerID int64, eventTypes []string, page, pageSize int) ([]model.Activity, int64, error) {
	db := d.DB.WithContext(ctx).Table(model.ActivityTableName())
	if offerID > 0 {
		db = db.Where("offer_id = ?", offerID)
	}
	if len(eventTypes) > 0 {
		db = db.Where("event_type in (?)", eventTypes)
	}

	// count on the bare filtered chain, before pagination clauses land on
	// the shared statement
	var total int64
	cacheKey, err := getActivityCountCacheKey(&activityCountCache{
		OfferID:    offerID,
		EventTypes: eventTypes,
	})
	if err != nil {
		return nil, 0, err
	}
	strNum := ""
	if d.KvStore != nil {
		strNum, _ = d.KvStore.Get(cacheKey)
	}
	if strNum != "" {
		total, _ = strconv.ParseInt(strNum, 10, 64)
	} else {
		if err := db.Count(&total).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed on count activities")
		}
		if d.KvStore != nil {
			_ = d.KvStore.Setex(cacheKey, strconv.FormatInt(total, 10), 30)
		}
	}

	var activities []model.Activity
	err = db.Order("create_time desc").Order("id desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&activities).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query activities")
	}
	return activities, total, nil
}
