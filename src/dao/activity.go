package dao

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

const CacheActivityNumPrefix = "cache:mkt:activity:count:"

// activityCountCache identifies one count query in the cache.
type activityCountCache struct {
	Collection string `json:"collection"`
	EventType  string `json:"event_type"`
}

func getActivityCountCacheKey(filter *activityCountCache) (string, error) {
	uid, err := json.Marshal(filter)
	if err != nil {
		return "", errors.Wrap(err, "failed on marshal activity filter")
	}
	return CacheActivityNumPrefix + string(uid), nil
}

func attrValue(ev ordermanager.Event, key string) string {
	for _, a := range ev.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func toActivityRows(sequence uint64, events []ordermanager.Event) ([]model.Activity, error) {
	rows := make([]model.Activity, 0, len(events))
	for _, ev := range events {
		attrs, err := json.Marshal(ev.Attrs)
		if err != nil {
			return nil, errors.Wrap(err, "failed on marshal event attrs")
		}
		rows = append(rows, model.Activity{
			Sequence:   sequence,
			EventType:  ev.Type,
			OrderID:    attrValue(ev, "id"),
			Collection: attrValue(ev, "collection"),
			TokenID:    attrValue(ev, "token_id"),
			Attrs:      string(attrs),
		})
	}
	return rows, nil
}

// RecordActivities writes the events of one committed operation.
func (s *Store) RecordActivities(sequence uint64, events []ordermanager.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows, err := toActivityRows(sequence, events)
	if err != nil {
		return err
	}
	if err := s.tx.Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed on insert activities")
	}
	return nil
}

// QueryActivities pages the audit trail, newest first, with optional
// collection and event-type filters.
func (d *Dao) QueryActivities(collection, eventType string, page, pageSize int) ([]model.Activity, int64, error) {
	q := d.DB.WithContext(d.ctx).Model(&model.Activity{})
	if collection != "" {
		q = q.Where("collection = ?", collection)
	}
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}

	// The total is cached briefly; the audit trail is append-only so a
	// slightly stale count is acceptable for paging.
	var cacheKey string
	if d.KvStore != nil {
		key, err := getActivityCountCacheKey(&activityCountCache{
			Collection: collection,
			EventType:  eventType,
		})
		if err != nil {
			return nil, 0, err
		}
		cacheKey = key
	}

	var total int64
	cached := false
	if cacheKey != "" {
		strNum, err := d.KvStore.Get(cacheKey)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed on get activity count from cache")
		}
		if strNum != "" {
			total, _ = strconv.ParseInt(strNum, 10, 64)
			cached = true
		}
	}
	if !cached {
		if err := q.Count(&total).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed on count activities")
		}
		if cacheKey != "" {
			if err := d.KvStore.Setex(cacheKey, strconv.FormatInt(total, 10), 30); err != nil {
				return nil, 0, errors.Wrap(err, "failed on cache activity count")
			}
		}
	}

	var rows []model.Activity
	err := q.Order("sequence desc, id desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query activities")
	}
	return rows, total, nil
}
