package model

// Activity is the audit trail: one row per engine event, attributes
// serialized as JSON. Sequence is the call sequence the event came from, so
// replaying activities in (sequence, id) order reproduces the history.
type Activity struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Sequence  uint64 `gorm:"column:sequence;not null;index"`
	EventType string `gorm:"column:event_type;type:varchar(40);not null;index"`

	OrderID    string `gorm:"column:order_id;type:varchar(66);index"`
	Collection string `gorm:"column:collection;type:varchar(66);index"`
	TokenID    string `gorm:"column:token_id;type:varchar(128)"`

	Attrs string `gorm:"column:attrs;type:text"`

	CreateTime int64 `gorm:"column:create_time;autoCreateTime:milli"`
}

func (Activity) TableName() string {
	return "ob_activity"
}
