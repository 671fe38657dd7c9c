package ordermanager

// Attr is a single event attribute.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is a structured record of something the engine did. Events are
// returned with the outcome and persisted by the host for auditability.
type Event struct {
	Type  string `json:"type"`
	Attrs []Attr `json:"attrs"`
}

func (e *Event) add(key, value string) {
	if value == "" {
		return
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// orderEvent renders the requested attribute keys of an order, skipping
// unset optional fields.
func orderEvent(ty string, o *Order, keys ...string) Event {
	ev := Event{Type: ty}
	for _, key := range keys {
		switch key {
		case "id":
			ev.add("id", o.ID)
		case "creator":
			ev.add("creator", o.Creator)
		case "collection":
			ev.add("collection", o.Collection)
		case "token_id":
			ev.add("token_id", o.TokenID)
		case "price":
			ev.add("price", o.Details.Price.String())
		case "recipient":
			ev.add("recipient", o.Details.Recipient)
		case "finder":
			ev.add("finder", o.Details.Finder)
		case "reserve_for":
			ev.add("reserve_for", o.Details.ReserveFor)
		case "expiry_timestamp":
			if o.Details.Expiry != nil {
				ev.add("expiry_timestamp", itoa64(o.Details.Expiry.Timestamp))
			}
		case "expiry_reward":
			if o.Details.Expiry != nil {
				ev.add("expiry_reward", o.Details.Expiry.Reward.String())
			}
		}
	}
	return ev
}

var setOrderAttrs = []string{
	"id", "creator", "collection", "token_id", "price",
	"recipient", "finder", "reserve_for", "expiry_timestamp", "expiry_reward",
}

var removeOrderAttrs = []string{"id", "collection", "token_id"}
