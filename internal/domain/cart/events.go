package cart

type EventKind string

const (
	EventItemAdded       EventKind = "item_added"
	EventQuantityChanged EventKind = "quantity_changed"
	EventItemRemoved     EventKind = "item_removed"
	EventCleared         EventKind = "cleared"
	EventNoop            EventKind = "noop"
)

// Event describes the outcome of a store mutation. The store never talks to
// a notification surface itself; the handler layer turns events into
// user-facing messages.
type Event struct {
	Kind        EventKind
	ProductID   string
	ProductName string
	Quantity    int
}
