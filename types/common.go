package types

import "time"

type CreatedRoom struct {
	ID        string    `db:"id" json:"roomId"`
	Code      string    `db:"code" json:"roomCode"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
