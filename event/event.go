// Package event defines the payload shape shared by every eventflow
// component and the Slack Events API vocabulary used for routing.
package event

// UnknownType is the routing sentinel for payloads without a "type" field.
const UnknownType = "unknown"

// Wildcard is the registration key matching every event regardless of type.
const Wildcard = "*"

// Event is one occurrence as an open JSON mapping. The core requires only a
// "type" string for routing and honours an optional "subtype" string; all
// other keys pass through untouched. Handlers may annotate the map, but must
// not assume other handlers observe those annotations in a specific order.
type Event map[string]any

// Type returns the event's "type" field, or UnknownType when the field is
// absent or not a string.
func (e Event) Type() string {
	if t, ok := e["type"].(string); ok && t != "" {
		return t
	}
	return UnknownType
}

// Subtype returns the event's "subtype" field, or "" when absent.
func (e Event) Subtype() string {
	s, _ := e["subtype"].(string)
	return s
}

// Key returns the dot-separated routing key for the event: "type.subtype"
// when a subtype is present, otherwise the bare type.
func (e Event) Key() string {
	return Key(e.Type(), e.Subtype())
}

// Key joins an event type and optional subtype into the dot-separated
// compound key used by registry-style dispatch.
func Key(typ, subtype string) string {
	if subtype == "" {
		return typ
	}
	return typ + "." + subtype
}
