// Package kvdb is a single file room store on bbolt. Each room is one JSON
// document keyed by its code, so every mutation is one bolt transaction.
package kvdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nakamauwu/hanghub/types"
)

const bucketRooms = "rooms"

func NewRoomStore(db *bolt.DB) (*RoomStore, error) {
	return &RoomStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRooms))
		return err
	})
}

type RoomStore struct {
	db *bolt.DB
}

func (s *RoomStore) Ping(ctx context.Context) error {
	_, span := tracer.Start(ctx, "Ping")
	defer span.End()

	return s.view(span, func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketRooms)) == nil {
			return errors.New("missing rooms bucket")
		}
		return nil
	})
}

func (s *RoomStore) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	_, span := tracer.Start(ctx, "RoomCodeExists", trace.WithAttributes(attribute.String("room.code", code)))
	defer span.End()

	var exists bool
	err := s.view(span, func(tx *bolt.Tx) error {
		exists = tx.Bucket([]byte(bucketRooms)).Get([]byte(code)) != nil
		return nil
	})
	return exists, err
}

func (s *RoomStore) CreateRoom(ctx context.Context, in types.CreateRoom) (types.CreatedRoom, error) {
	_, span := tracer.Start(ctx, "CreateRoom", trace.WithAttributes(attribute.String("room.code", in.Code())))
	defer span.End()

	now := time.Now().UTC()
	room := types.Room{
		ID:          in.RoomID(),
		Code:        in.Code(),
		HangoutName: in.HangoutName,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		GroupSize:   in.GroupSize,
		HostName:    in.HostName,
		Status:      types.RoomStatusWaiting,
		Participants: []types.Participant{{
			ID:               in.HostID(),
			Name:             in.HostName,
			IsHost:           true,
			Status:           types.ParticipantStatusReady,
			JoinedAt:         now,
			SwipedActivities: []string{},
			LikedActivities:  []string{},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	room.EnsureArrays()

	var out types.CreatedRoom
	err := s.update(span, func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketRooms))
		if bucket.Get([]byte(room.Code)) != nil {
			return types.ErrRoomCodeTaken
		}

		if err := putRoom(bucket, room); err != nil {
			return err
		}

		out = types.CreatedRoom{ID: room.ID, Code: room.Code, CreatedAt: room.CreatedAt}
		return nil
	})
	return out, err
}

func (s *RoomStore) Room(ctx context.Context, code string) (types.Room, error) {
	_, span := tracer.Start(ctx, "Room", trace.WithAttributes(attribute.String("room.code", code)))
	defer span.End()

	var out types.Room
	err := s.view(span, func(tx *bolt.Tx) error {
		room, err := getRoom(tx.Bucket([]byte(bucketRooms)), code, types.ErrRoomNotFound)
		if err != nil {
			return err
		}

		out = room
		return nil
	})
	return out, err
}

func (s *RoomStore) JoinRoom(ctx context.Context, in types.JoinRoom) (types.Participant, error) {
	_, span := tracer.Start(ctx, "JoinRoom", trace.WithAttributes(attribute.String("room.code", in.RoomCode)))
	defer span.End()

	var out types.Participant
	err := s.update(span, func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketRooms))
		room, err := getRoom(bucket, in.RoomCode, types.ErrRoomNotFound)
		if err != nil {
			return err
		}

		if slices.ContainsFunc(room.Participants, func(p types.Participant) bool {
			return p.Name == in.UserName
		}) {
			return types.ErrUserAlreadyInRoom
		}

		now := time.Now().UTC()
		p := types.Participant{
			ID:               in.ParticipantID(),
			Name:             in.UserName,
			Status:           types.ParticipantStatusJoining,
			JoinedAt:         now,
			SwipedActivities: []string{},
			LikedActivities:  []string{},
		}
		room.Participants = append(room.Participants, p)
		room.UpdatedAt = now

		if err := putRoom(bucket, room); err != nil {
			return err
		}

		out = p
		return nil
	})
	return out, err
}

func (s *RoomStore) UpdatePreferences(ctx context.Context, in types.UpdatePreferences) error {
	_, span := tracer.Start(ctx, "UpdatePreferences", trace.WithAttributes(
		attribute.String("room.code", in.RoomCode),
		attribute.String("participant.id", in.ParticipantID),
	))
	defer span.End()

	prefs := in.Preferences()
	return s.updateParticipant(span, in.RoomCode, in.ParticipantID, func(room *types.Room, p *types.Participant) {
		p.Preferences = &prefs
		p.Status = types.ParticipantStatusReady
		room.Preferences.Append(prefs)
	})
}

func (s *RoomStore) SubmitSwipes(ctx context.Context, in types.SubmitSwipes) error {
	_, span := tracer.Start(ctx, "SubmitSwipes", trace.WithAttributes(
		attribute.String("room.code", in.RoomCode),
		attribute.String("participant.id", in.ParticipantID),
		attribute.Int("swipes.liked", len(in.LikedActivities)),
		attribute.Int("swipes.passed", len(in.PassedActivities)),
	))
	defer span.End()

	return s.updateParticipant(span, in.RoomCode, in.ParticipantID, func(room *types.Room, p *types.Participant) {
		p.SwipedActivities = in.SwipedActivities()
		p.LikedActivities = slices.Clone(in.LikedActivities)
		p.Status = types.ParticipantStatusCompleted
		room.Activities.Liked = append(room.Activities.Liked, in.LikedActivities...)
		room.Activities.Passed = append(room.Activities.Passed, in.PassedActivities...)
	})
}

// updateParticipant applies fn to the room and its participant and writes
// both back in the same transaction.
func (s *RoomStore) updateParticipant(span trace.Span, code, participantID string, fn func(room *types.Room, p *types.Participant)) error {
	return s.update(span, func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketRooms))
		room, err := getRoom(bucket, code, types.ErrParticipantNotFound)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(room.Participants, func(p types.Participant) bool {
			return p.ID == participantID
		})
		if i == -1 {
			return types.ErrParticipantNotFound
		}

		fn(&room, &room.Participants[i])
		room.UpdatedAt = time.Now().UTC()

		return putRoom(bucket, room)
	})
}

func (s *RoomStore) view(span trace.Span, fn func(tx *bolt.Tx) error) error {
	span.AddEvent("View bucket")
	return traced(span, s.db.View(fn))
}

func (s *RoomStore) update(span trace.Span, fn func(tx *bolt.Tx) error) error {
	span.AddEvent("Update bucket")
	return traced(span, s.db.Update(fn))
}

func traced(span trace.Span, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, berrors.ErrDatabaseNotOpen) || errors.Is(err, berrors.ErrTimeout) {
		err = fmt.Errorf("%w: %w", types.ErrStoreUnavailable, err)
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func getRoom(bucket *bolt.Bucket, code string, notFound error) (types.Room, error) {
	var room types.Room

	b := bucket.Get([]byte(code))
	if b == nil {
		return room, notFound
	}

	if err := json.Unmarshal(b, &room); err != nil {
		return room, fmt.Errorf("convert json to room: %w", err)
	}

	return room, nil
}

func putRoom(bucket *bolt.Bucket, room types.Room) error {
	b, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("convert room to json: %w", err)
	}

	if err := bucket.Put([]byte(room.Code), b); err != nil {
		return fmt.Errorf("put room %q: %w", room.Code, err)
	}

	return nil
}
