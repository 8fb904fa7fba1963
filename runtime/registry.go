// Package runtime owns the process-local broadcast state: which connected
// session listens to which room, and the supervised background workers.
package runtime

import (
	"sync"

	"chat-hub/contract"
	"chat-hub/domain"
)

type set map[string]struct{}

// Registry is the in-memory room membership table. It maps chat rooms to the
// session sinks currently joined to them. State is ephemeral: initialized at
// startup, mutated under the lock, lost on restart.
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]contract.EventSink // session id -> sink
	roomMembers  map[domain.RoomID]set         // room -> member session ids
	sessionRooms map[string]map[domain.RoomID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:     make(map[string]contract.EventSink),
		roomMembers:  make(map[domain.RoomID]set),
		sessionRooms: make(map[string]map[domain.RoomID]struct{}),
	}
}

// Subscribe registers a session's sink and joins it to the room. Joining a
// room the session already belongs to has no additional effect. The reverse
// index keeps DropSession cheap when the connection goes away.
func (r *Registry) Subscribe(sessionID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = sink

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(set)
	}
	r.roomMembers[roomID][sessionID] = struct{}{}

	if _, ok := r.sessionRooms[sessionID]; !ok {
		r.sessionRooms[sessionID] = make(map[domain.RoomID]struct{})
	}
	r.sessionRooms[sessionID][roomID] = struct{}{}
}

// Unsubscribe removes the session from one room. Empty rooms are deleted so
// the membership table does not accumulate dead entries.
func (r *Registry) Unsubscribe(sessionID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsubscribeLocked(sessionID, roomID)
	if rooms, ok := r.sessionRooms[sessionID]; ok && len(rooms) == 0 {
		delete(r.sessionRooms, sessionID)
		delete(r.sessions, sessionID)
	}
}

// DropSession removes the session from every room it joined and forgets its
// sink. The connection layer calls this on disconnect, which is what keeps
// stale session handles from accumulating in long-lived rooms.
func (r *Registry) DropSession(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomID := range r.sessionRooms[sessionID] {
		r.unsubscribeLocked(sessionID, roomID)
	}
	delete(r.sessionRooms, sessionID)
	delete(r.sessions, sessionID)
}

// SinksForRoom returns a snapshot of the sinks joined to the room. The
// snapshot is taken under the read lock; emission happens after release, so
// no store or registry lock is ever held while writing to a session.
// Returns nil for an unknown or empty room.
func (r *Registry) SinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(members))
	for sessionID := range members {
		if sink, exists := r.sessions[sessionID]; exists {
			sinks = append(sinks, sink)
		}
	}
	if len(sinks) == 0 {
		return nil
	}
	return sinks
}

func (r *Registry) unsubscribeLocked(sessionID string, roomID domain.RoomID) {
	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
	if rooms, ok := r.sessionRooms[sessionID]; ok {
		delete(rooms, roomID)
	}
}
