// Package event delivers state changes of a Key or Pedals to whoever renders
// or plays them.
package event

import "fmt"

type Property string

const (
	PropKeySig Property = "KeySig"
	PropScale  Property = "Scale"
	PropPedals Property = "Pedals"
)

// Event carries the values before and after a mutation. Their types depend on
// Property: key.KeySignature, key.Scale or pedal.Position.
type Event struct {
	Property Property
	Old, New interface{}
}

func (e Event) String() string {
	return fmt.Sprintf("%s: %v -> %v", e.Property, e.Old, e.New)
}

// Listener must be comparable (usually a pointer) so that it can be removed.
type Listener interface {
	Changed(Event)
}

// Notifier is embedded by observable objects. The zero value is ready to use.
type Notifier struct {
	listeners []Listener
}

func (n *Notifier) AddListener(l Listener) {
	if l == nil {
		return
	}
	n.listeners = append(n.listeners, l)
}

// RemoveListener drops the first registration of l.
func (n *Notifier) RemoveListener(l Listener) {
	for i, x := range n.listeners {
		if x == l {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Fire calls every listener synchronously, in registration order.
func (n *Notifier) Fire(prop Property, old, new interface{}) {
	e := Event{Property: prop, Old: old, New: new}
	for _, l := range n.listeners {
		l.Changed(e)
	}
}

// Recorder keeps every event it sees.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Changed(e Event) {
	r.Events = append(r.Events, e)
}
