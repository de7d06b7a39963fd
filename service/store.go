package service

import (
	"context"

	"github.com/nakamauwu/hanghub/types"
)

//go:generate go tool moq -out store_mock_test.go . Store

// Store persists rooms. Implementations must apply every mutation,
// participant change plus room array append, atomically, and must return
// the sentinel errors declared in package types.
type Store interface {
	RoomCodeExists(ctx context.Context, code string) (bool, error)
	CreateRoom(ctx context.Context, in types.CreateRoom) (types.CreatedRoom, error)
	Room(ctx context.Context, code string) (types.Room, error)
	JoinRoom(ctx context.Context, in types.JoinRoom) (types.Participant, error)
	UpdatePreferences(ctx context.Context, in types.UpdatePreferences) error
	SubmitSwipes(ctx context.Context, in types.SubmitSwipes) error
	Ping(ctx context.Context) error
}

type PubSub interface {
	Pub(topic string, data []byte) error
	Sub(topic string, handler func(data []byte)) (unsub func() error, err error)
}
