package cockroach

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/hanghub/types"
	"github.com/nicolasparada/go-db"
)

type roomRow struct {
	ID                 string           `db:"id"`
	Code               string           `db:"code"`
	HangoutName        string           `db:"hangout_name"`
	Location           string           `db:"location"`
	HangoutDate        *time.Time       `db:"hangout_date"`
	HangoutTime        *time.Time       `db:"hangout_time"`
	GroupSize          int              `db:"group_size"`
	HostName           string           `db:"host_name"`
	Status             types.RoomStatus `db:"status"`
	MaxDistances       []float64        `db:"max_distances"`
	Budgets            []float64        `db:"budgets"`
	DrivingWillingness []float64        `db:"driving_willingness"`
	GroupSizes         []float64        `db:"group_sizes"`
	TimeFlexibility    []float64        `db:"time_flexibility"`
	LikedActivities    []string         `db:"liked_activities"`
	PassedActivities   []string         `db:"passed_activities"`
	MatchedActivities  []string         `db:"matched_activities"`
	CreatedAt          time.Time        `db:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
}

func (r roomRow) room(participants []types.Participant) types.Room {
	return types.Room{
		ID:           r.ID,
		Code:         r.Code,
		HangoutName:  r.HangoutName,
		Location:     r.Location,
		Date:         r.HangoutDate,
		Time:         r.HangoutTime,
		GroupSize:    r.GroupSize,
		HostName:     r.HostName,
		Status:       r.Status,
		Participants: participants,
		Preferences: types.RoomPreferences{
			MaxDistance:        r.MaxDistances,
			Budget:             r.Budgets,
			DrivingWillingness: r.DrivingWillingness,
			GroupSize:          r.GroupSizes,
			TimeFlexibility:    r.TimeFlexibility,
		},
		Activities: types.RoomActivities{
			Liked:   r.LikedActivities,
			Passed:  r.PassedActivities,
			Matches: r.MatchedActivities,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (c *Cockroach) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM rooms WHERE code = @code)`
	args := pgx.StrictNamedArgs{"code": code}
	exists, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[bool])
	if err != nil {
		return false, unavailable(fmt.Errorf("sql select room code exists: %w", err))
	}

	return exists, nil
}

func (c *Cockroach) CreateRoom(ctx context.Context, in types.CreateRoom) (types.CreatedRoom, error) {
	var out types.CreatedRoom
	err := c.db.RunTx(ctx, func(ctx context.Context) error {
		const insertRoom = `
			INSERT INTO rooms (id, code, hangout_name, location, hangout_date, hangout_time, group_size, host_name, status)
			VALUES (@id, @code, @hangout_name, @location, @hangout_date, @hangout_time, @group_size, @host_name, @status)
			RETURNING id, code, created_at
		`
		args := pgx.StrictNamedArgs{
			"id":           in.RoomID(),
			"code":         in.Code(),
			"hangout_name": in.HangoutName,
			"location":     in.Location,
			"hangout_date": in.Date,
			"hangout_time": in.Time,
			"group_size":   in.GroupSize,
			"host_name":    in.HostName,
			"status":       types.RoomStatusWaiting,
		}
		created, err := pgxutil.SelectRow(ctx, c.db, insertRoom, []any{args}, pgx.RowToStructByNameLax[types.CreatedRoom])
		if isUniqueViolation(err, "rooms_code_key") {
			return types.ErrRoomCodeTaken
		}

		if err != nil {
			return fmt.Errorf("sql insert room: %w", err)
		}

		const insertHost = `
			INSERT INTO participants (room_id, id, name, is_host, status)
			VALUES (@room_id, @id, @name, true, @status)
		`
		_, err = c.db.Exec(ctx, insertHost, pgx.StrictNamedArgs{
			"room_id": created.ID,
			"id":      in.HostID(),
			"name":    in.HostName,
			"status":  types.ParticipantStatusReady,
		})
		if err != nil {
			return fmt.Errorf("sql insert host participant: %w", err)
		}

		out = created
		return nil
	})
	if err != nil {
		return out, unavailable(err)
	}

	return out, nil
}

func (c *Cockroach) Room(ctx context.Context, code string) (types.Room, error) {
	var out types.Room
	err := c.db.RunTx(ctx, func(ctx context.Context) error {
		const roomQuery = `
			SELECT id, code, hangout_name, location, hangout_date, hangout_time, group_size, host_name, status
				, max_distances, budgets, driving_willingness, group_sizes, time_flexibility
				, liked_activities, passed_activities, matched_activities
				, created_at, updated_at
			FROM rooms
			WHERE code = @code
		`
		args := pgx.StrictNamedArgs{"code": code}
		row, err := pgxutil.SelectRow(ctx, c.db, roomQuery, []any{args}, pgx.RowToStructByName[roomRow])
		if db.IsNotFoundError(err) {
			return types.ErrRoomNotFound
		}

		if err != nil {
			return fmt.Errorf("sql select room: %w", err)
		}

		participants, err := c.participants(ctx, row.ID)
		if err != nil {
			return err
		}

		out = row.room(participants)
		return nil
	})
	if err != nil {
		return out, unavailable(err)
	}

	return out, nil
}
