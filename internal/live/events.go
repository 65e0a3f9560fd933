package live

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event is one push notification from the node's event channel.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Event types delivered by the node.
const (
	EventNewBlock       = "new_block"
	EventTxConfirmed    = "tx_confirmed"
	EventNewTransaction = "new_transaction"
)

// NewBlockData is the payload of a new_block event.
type NewBlockData struct {
	Height  uint64 `json:"height"`
	Hash    string `json:"hash"`
	TxCount uint32 `json:"tx_count"`
}

// TxConfirmedData is the payload of a tx_confirmed event.
type TxConfirmedData struct {
	TxHash        string `json:"tx_hash"`
	Confirmations uint32 `json:"confirmations"`
}

// Handler consumes events for one subscriber.
type Handler func(Event)

const subscriberBuffer = 256

// Dispatcher fans node events out to subscribers. Each subscriber sees
// events in arrival order; no ordering is guaranteed across subscribers.
// The transport layer feeds it via Publish.
type Dispatcher struct {
	logger *zap.Logger

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*Subscription
}

// Subscription is a cancellable handle on an event stream.
type Subscription struct {
	id         uint64
	dispatcher *Dispatcher
	events     chan Event
	done       chan struct{}
	once       sync.Once
}

// NewDispatcher builds an empty dispatcher.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger.Named("events"),
		subs:   make(map[uint64]*Subscription),
	}
}

// Subscribe registers a handler and starts delivering events to it in
// arrival order. The returned subscription must be canceled when no longer
// needed.
func (d *Dispatcher) Subscribe(handler Handler) *Subscription {
	sub := &Subscription{
		dispatcher: d,
		events:     make(chan Event, subscriberBuffer),
		done:       make(chan struct{}),
	}

	d.mu.Lock()
	d.nextID++
	sub.id = d.nextID
	d.subs[sub.id] = sub
	d.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.done:
				return
			case event := <-sub.events:
				handler(event)
			}
		}
	}()

	return sub
}

// Publish delivers an event to every current subscriber. A subscriber that
// cannot keep up loses the event rather than stalling the rest.
func (d *Dispatcher) Publish(event Event) {
	d.mu.Lock()
	subs := make([]*Subscription, 0, len(d.subs))
	for _, sub := range d.subs {
		subs = append(subs, sub)
	}
	d.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.events <- event:
		default:
			d.logger.Warn("dropping event for slow subscriber",
				zap.Uint64("subscriber", sub.id),
				zap.String("type", event.Type))
		}
	}
}

// Cancel stops delivery and unregisters the subscription. Safe to call more
// than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		s.dispatcher.mu.Lock()
		delete(s.dispatcher.subs, s.id)
		s.dispatcher.mu.Unlock()
	})
}
