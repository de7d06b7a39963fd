package types

import "time"

type RoomEventKind string

const (
	RoomEventCreated            RoomEventKind = "created"
	RoomEventParticipantJoined  RoomEventKind = "participant_joined"
	RoomEventPreferencesUpdated RoomEventKind = "preferences_updated"
	RoomEventSwipesSubmitted    RoomEventKind = "swipes_submitted"
)

// RoomEvent notifies that a room changed. It carries no room state;
// subscribers re-read the room.
type RoomEvent struct {
	RoomCode      string        `msgpack:"room_code"`
	Kind          RoomEventKind `msgpack:"kind"`
	ParticipantID string        `msgpack:"participant_id,omitempty"`
	At            time.Time     `msgpack:"at"`
}
