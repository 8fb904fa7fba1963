//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
// Package contract declares the interfaces shared between the runtime, the
// services and the transport layers.
package contract

import (
	"context"
	"reflect"

	"chat-hub/domain"
	"chat-hub/domain/event"
)

// Worker is a long-running unit supervised by the runtime.
// A worker does not protect itself against panics; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// sparing every worker a manual naming method. Used for supervision logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives domain events for one connected session. Consume must
// not block; slow consumers buffer or drop on their side.
type EventSink interface {
	Consume(e event.DomainEvent) error
}

// IRegistry tracks which session sinks are joined to which room.
type IRegistry interface {
	Subscribe(sessionID string, roomID domain.RoomID, sink EventSink)
	Unsubscribe(sessionID string, roomID domain.RoomID)
	DropSession(sessionID string)
	SinksForRoom(roomID domain.RoomID) []EventSink
}
