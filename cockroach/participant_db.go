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

type participantRow struct {
	ID               string                  `db:"id"`
	Name             string                  `db:"name"`
	IsHost           bool                    `db:"is_host"`
	Status           types.ParticipantStatus `db:"status"`
	Preferences      *types.Preferences      `db:"preferences"`
	SwipedActivities []string                `db:"swiped_activities"`
	LikedActivities  []string                `db:"liked_activities"`
	JoinedAt         time.Time               `db:"joined_at"`
}

func (p participantRow) participant() types.Participant {
	return types.Participant{
		ID:               p.ID,
		Name:             p.Name,
		IsHost:           p.IsHost,
		Status:           p.Status,
		JoinedAt:         p.JoinedAt,
		Preferences:      p.Preferences,
		SwipedActivities: p.SwipedActivities,
		LikedActivities:  p.LikedActivities,
	}
}

const participantColumns = `id, name, is_host, status, preferences, swiped_activities, liked_activities, joined_at`

func (c *Cockroach) participants(ctx context.Context, roomID string) ([]types.Participant, error) {
	const query = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE room_id = @room_id
		ORDER BY joined_at ASC, id ASC
	`
	args := pgx.StrictNamedArgs{"room_id": roomID}
	rows, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByName[participantRow])
	if err != nil {
		return nil, fmt.Errorf("sql select participants: %w", err)
	}

	out := make([]types.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.participant())
	}

	return out, nil
}

func (c *Cockroach) JoinRoom(ctx context.Context, in types.JoinRoom) (types.Participant, error) {
	var out types.Participant
	err := c.db.RunTx(ctx, func(ctx context.Context) error {
		roomID, err := c.roomID(ctx, in.RoomCode)
		if err != nil {
			return err
		}

		const insert = `
			INSERT INTO participants (room_id, id, name, is_host, status)
			VALUES (@room_id, @id, @name, false, @status)
			RETURNING ` + participantColumns
		args := pgx.StrictNamedArgs{
			"room_id": roomID,
			"id":      in.ParticipantID(),
			"name":    in.UserName,
			"status":  types.ParticipantStatusJoining,
		}
		row, err := pgxutil.SelectRow(ctx, c.db, insert, []any{args}, pgx.RowToStructByName[participantRow])
		if isUniqueViolation(err, "participants_room_name_key") {
			return types.ErrUserAlreadyInRoom
		}

		if err != nil {
			return fmt.Errorf("sql insert participant: %w", err)
		}

		if err := c.touchRoom(ctx, roomID); err != nil {
			return err
		}

		out = row.participant()
		return nil
	})
	if err != nil {
		return out, unavailable(err)
	}

	return out, nil
}

func (c *Cockroach) UpdatePreferences(ctx context.Context, in types.UpdatePreferences) error {
	prefs := in.Preferences()
	return unavailable(c.db.RunTx(ctx, func(ctx context.Context) error {
		roomID, err := c.updateParticipant(ctx, in.RoomCode, in.ParticipantID, `
			preferences = @preferences, status = @status
		`, pgx.StrictNamedArgs{
			"preferences": prefs,
			"status":      types.ParticipantStatusReady,
		})
		if err != nil {
			return err
		}

		const query = `
			UPDATE rooms SET
				max_distances = array_append(max_distances, @max_distance::FLOAT8)
				, budgets = array_append(budgets, @budget::FLOAT8)
				, driving_willingness = array_append(driving_willingness, @driving_willingness::FLOAT8)
				, group_sizes = array_append(group_sizes, @group_size::FLOAT8)
				, time_flexibility = array_append(time_flexibility, @time_flexibility::FLOAT8)
				, updated_at = now()
			WHERE id = @room_id
		`
		_, err = c.db.Exec(ctx, query, pgx.StrictNamedArgs{
			"room_id":             roomID,
			"max_distance":        prefs.MaxDistance,
			"budget":              prefs.Budget,
			"driving_willingness": prefs.DrivingWillingness,
			"group_size":          prefs.GroupSize,
			"time_flexibility":    prefs.TimeFlexibility,
		})
		if err != nil {
			return fmt.Errorf("sql append room preferences: %w", err)
		}

		return nil
	}))
}

func (c *Cockroach) SubmitSwipes(ctx context.Context, in types.SubmitSwipes) error {
	return unavailable(c.db.RunTx(ctx, func(ctx context.Context) error {
		roomID, err := c.updateParticipant(ctx, in.RoomCode, in.ParticipantID, `
			swiped_activities = @swiped_activities
			, liked_activities = @liked_activities
			, status = @status
		`, pgx.StrictNamedArgs{
			"swiped_activities": in.SwipedActivities(),
			"liked_activities":  in.LikedActivities,
			"status":            types.ParticipantStatusCompleted,
		})
		if err != nil {
			return err
		}

		const query = `
			UPDATE rooms SET
				liked_activities = array_cat(liked_activities, @liked::VARCHAR[])
				, passed_activities = array_cat(passed_activities, @passed::VARCHAR[])
				, updated_at = now()
			WHERE id = @room_id
		`
		_, err = c.db.Exec(ctx, query, pgx.StrictNamedArgs{
			"room_id": roomID,
			"liked":   in.LikedActivities,
			"passed":  in.PassedActivities,
		})
		if err != nil {
			return fmt.Errorf("sql append room activities: %w", err)
		}

		return nil
	}))
}

// updateParticipant applies set to the participant identified by room code
// and participant id, returning the room id. It must run inside a transaction.
func (c *Cockroach) updateParticipant(ctx context.Context, code, participantID, set string, args pgx.StrictNamedArgs) (string, error) {
	query := `
		UPDATE participants SET ` + set + `
		WHERE id = @participant_id
			AND room_id = (SELECT id FROM rooms WHERE code = @code)
		RETURNING room_id
	`
	args["participant_id"] = participantID
	args["code"] = code

	roomID, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[string])
	if db.IsNotFoundError(err) {
		return "", types.ErrParticipantNotFound
	}

	if err != nil {
		return "", fmt.Errorf("sql update participant: %w", err)
	}

	return roomID, nil
}

func (c *Cockroach) roomID(ctx context.Context, code string) (string, error) {
	const query = `SELECT id FROM rooms WHERE code = @code FOR UPDATE`
	args := pgx.StrictNamedArgs{"code": code}
	roomID, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[string])
	if db.IsNotFoundError(err) {
		return "", types.ErrRoomNotFound
	}

	if err != nil {
		return "", fmt.Errorf("sql select room id: %w", err)
	}

	return roomID, nil
}

func (c *Cockroach) touchRoom(ctx context.Context, roomID string) error {
	const query = `UPDATE rooms SET updated_at = now() WHERE id = @room_id`
	_, err := c.db.Exec(ctx, query, pgx.StrictNamedArgs{"room_id": roomID})
	if err != nil {
		return fmt.Errorf("sql touch room: %w", err)
	}
	return nil
}
