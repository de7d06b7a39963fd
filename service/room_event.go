package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nakamauwu/hanghub/types"
	"github.com/vmihailenco/msgpack/v5"
)

func roomTopic(code string) string {
	return "rooms." + code
}

func (svc *Service) publishRoomEvent(ev types.RoomEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	svc.background(func(ctx context.Context) error {
		b, err := msgpack.Marshal(ev)
		if err != nil {
			return fmt.Errorf("msgpack marshal room event: %w", err)
		}

		if err := svc.PubSub.Pub(roomTopic(ev.RoomCode), b); err != nil {
			return fmt.Errorf("publish room event: %w", err)
		}

		return nil
	})
}

// RoomStream yields the current room right away and then the re-read room
// after every change. Bursts of changes collapse into a single read.
// The channel closes when ctx is done.
func (svc *Service) RoomStream(ctx context.Context, code string) (<-chan types.Room, error) {
	room, err := svc.Room(ctx, code)
	if err != nil {
		return nil, err
	}

	code = room.Code
	changed := make(chan struct{}, 1)

	unsub, err := svc.PubSub.Sub(roomTopic(code), func(data []byte) {
		var ev types.RoomEvent
		if err := msgpack.Unmarshal(data, &ev); err != nil {
			svc.report(fmt.Errorf("msgpack unmarshal room event: %w", err))
			return
		}

		if ev.RoomCode != code {
			return
		}

		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to room events: %w", err)
	}

	rr := make(chan types.Room)

	go func() {
		defer close(rr)
		defer func() {
			if err := unsub(); err != nil {
				svc.report(fmt.Errorf("unsubscribe from room events: %w", err))
			}
		}()

		next := room
		var err error
		for {
			select {
			case rr <- next:
			case <-ctx.Done():
				return
			}

			select {
			case <-changed:
			case <-ctx.Done():
				return
			}

			next, err = svc.Store.Room(ctx, code)
			for err != nil {
				if ctx.Err() != nil {
					return
				}

				svc.report(fmt.Errorf("stream room: %w", err))

				select {
				case <-changed:
				case <-ctx.Done():
					return
				}

				next, err = svc.Store.Room(ctx, code)
			}
		}
	}()

	return rr, nil
}
