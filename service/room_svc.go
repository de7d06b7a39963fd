package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nakamauwu/hanghub/catalog"
	"github.com/nakamauwu/hanghub/id"
	"github.com/nakamauwu/hanghub/types"
	"github.com/nicolasparada/go-errs"
)

const maxCreateRoomAttempts = 5

var errRoomCodeExhausted = errs.ConflictError("could not allocate a unique room code")

func (svc *Service) CreateRoom(ctx context.Context, in types.CreateRoom) (types.CreatedRoom, error) {
	var out types.CreatedRoom

	if err := in.Validate(); err != nil {
		return out, err
	}

	in.SetRoomID(id.Generate())
	in.SetHostID(id.Generate())

	for attempt := 1; ; attempt++ {
		code, err := svc.generateRoomCode(ctx)
		if err != nil {
			return out, err
		}

		in.SetCode(code)

		out, err = svc.Store.CreateRoom(ctx, in)
		if errors.Is(err, types.ErrRoomCodeTaken) {
			if attempt < maxCreateRoomAttempts {
				continue
			}
			return out, errRoomCodeExhausted
		}

		if err != nil {
			return out, err
		}

		break
	}

	svc.publishRoomEvent(types.RoomEvent{
		RoomCode:      out.Code,
		Kind:          types.RoomEventCreated,
		ParticipantID: in.HostID(),
		At:            out.CreatedAt,
	})

	return out, nil
}

// generateRoomCode draws codes until one is not in use.
// A store failure ends the loop.
func (svc *Service) generateRoomCode(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := id.RoomCode()
		if err != nil {
			return "", fmt.Errorf("generate room code: %w", err)
		}

		exists, err := svc.Store.RoomCodeExists(ctx, code)
		if err != nil {
			return "", err
		}

		if !exists {
			return code, nil
		}
	}
}

func (svc *Service) JoinRoom(ctx context.Context, in types.JoinRoom) (types.Participant, error) {
	var out types.Participant

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !id.ValidRoomCode(in.RoomCode) {
		return out, types.ErrRoomNotFound
	}

	in.SetParticipantID(id.Generate())

	out, err := svc.Store.JoinRoom(ctx, in)
	if err != nil {
		return out, err
	}

	svc.publishRoomEvent(types.RoomEvent{
		RoomCode:      in.RoomCode,
		Kind:          types.RoomEventParticipantJoined,
		ParticipantID: out.ID,
		At:            out.JoinedAt,
	})

	return out, nil
}

func (svc *Service) Room(ctx context.Context, code string) (types.Room, error) {
	code = id.NormalizeRoomCode(code)
	if !id.ValidRoomCode(code) {
		return types.Room{}, types.ErrRoomNotFound
	}

	return svc.Store.Room(ctx, code)
}

func (svc *Service) UpdatePreferences(ctx context.Context, in types.UpdatePreferences) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if !id.ValidRoomCode(in.RoomCode) || !id.Valid(in.ParticipantID) {
		return types.ErrParticipantNotFound
	}

	if err := svc.Store.UpdatePreferences(ctx, in); err != nil {
		return err
	}

	svc.publishRoomEvent(types.RoomEvent{
		RoomCode:      in.RoomCode,
		Kind:          types.RoomEventPreferencesUpdated,
		ParticipantID: in.ParticipantID,
	})

	return nil
}

func (svc *Service) SubmitSwipes(ctx context.Context, in types.SubmitSwipes) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if !id.ValidRoomCode(in.RoomCode) || !id.Valid(in.ParticipantID) {
		return types.ErrParticipantNotFound
	}

	if err := svc.Store.SubmitSwipes(ctx, in); err != nil {
		return err
	}

	svc.publishRoomEvent(types.RoomEvent{
		RoomCode:      in.RoomCode,
		Kind:          types.RoomEventSwipesSubmitted,
		ParticipantID: in.ParticipantID,
	})

	return nil
}

func (svc *Service) RoomStats(ctx context.Context, code string) (types.RoomStats, error) {
	room, err := svc.Room(ctx, code)
	if err != nil {
		return types.RoomStats{}, err
	}

	return Stats(room), nil
}

func (svc *Service) Activities() []catalog.Activity {
	return catalog.All()
}
