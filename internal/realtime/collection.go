package realtime

import "encoding/json"

// ChangeAction is the kind of mutation carried by a ChangeEvent.
type ChangeAction string

const (
	ActionInsert ChangeAction = "insert"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
)

// ChangeEvent is the wire format broadcast to team channels whenever an
// entity changes: which table, which row, what happened, and the new row
// payload (nil for deletes).
type ChangeEvent struct {
	Action  ChangeAction    `json:"action"`
	Entity  string          `json:"entity"` // "team", "member", "competency", "task", "rating"
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewChangeEvent marshals payload and builds the event. Marshal failures
// degrade to an event without payload; the id still lets clients refetch.
func NewChangeEvent(action ChangeAction, entity, id string, payload any) ChangeEvent {
	evt := ChangeEvent{Action: action, Entity: entity, ID: id}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			evt.Payload = raw
		}
	}
	return evt
}

// Collection is an ordered map keyed by entity id: the reducer clients run
// to keep a cached list in sync with the change feed. Inserts append,
// updates replace in place (unknown ids append, so a missed insert heals),
// deletes remove and close the gap.
type Collection struct {
	order []string
	items map[string]json.RawMessage
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{items: make(map[string]json.RawMessage)}
}

// Apply folds one change event into the collection.
func (c *Collection) Apply(evt ChangeEvent) {
	switch evt.Action {
	case ActionInsert:
		if _, ok := c.items[evt.ID]; !ok {
			c.order = append(c.order, evt.ID)
		}
		c.items[evt.ID] = evt.Payload
	case ActionUpdate:
		if _, ok := c.items[evt.ID]; !ok {
			c.order = append(c.order, evt.ID)
		}
		c.items[evt.ID] = evt.Payload
	case ActionDelete:
		if _, ok := c.items[evt.ID]; !ok {
			return
		}
		delete(c.items, evt.ID)
		for i, id := range c.order {
			if id == evt.ID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Get returns the payload stored under id.
func (c *Collection) Get(id string) (json.RawMessage, bool) {
	v, ok := c.items[id]
	return v, ok
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// IDs returns the ids in insertion order.
func (c *Collection) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
