package audit

import (
	"context"
	"time"
)

// Store is the append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}

// Publisher captures structured audit events. The store append happens on the
// caller's path; external delivery goes through the outbox channel so a slow
// broker never blocks a request.
type Publisher struct {
	store  Store
	outbox chan<- Event
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// WithOutbox attaches the channel drained by a Worker. Events are dropped
// when the outbox is full rather than stalling the request path.
func (p *Publisher) WithOutbox(outbox chan<- Event) *Publisher {
	p.outbox = outbox
	return p
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	if err := p.store.Append(ctx, base); err != nil {
		return err
	}
	if p.outbox != nil {
		select {
		case p.outbox <- base:
		default:
		}
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, userID string) ([]Event, error) {
	return p.store.ListByUser(ctx, userID)
}
