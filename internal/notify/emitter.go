package notify

import (
	"context"
	"errors"
)

// Payload is what recipients receive for every order event.
type Payload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	OrderID string `json:"order_id,omitempty"`
}

// Emitter delivers a payload to one recipient within a namespace
// (e.g. "orders", "payments").
type Emitter interface {
	Emit(ctx context.Context, namespace, recipientID string, payload Payload) error
}

// Fanout emits to every child. A failing child does not stop the others.
type Fanout []Emitter

func (f Fanout) Emit(ctx context.Context, namespace, recipientID string, payload Payload) error {
	var errs []error
	for _, e := range f {
		if err := e.Emit(ctx, namespace, recipientID, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop drops every payload.
type Nop struct{}

func (Nop) Emit(context.Context, string, string, Payload) error { return nil }
