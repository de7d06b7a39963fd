package types

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nakamauwu/hanghub/catalog"
	"github.com/nakamauwu/hanghub/id"
	"github.com/nakamauwu/hanghub/ptr"
	"github.com/nakamauwu/hanghub/validator"
)

type Participant struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	IsHost           bool              `json:"isHost"`
	Status           ParticipantStatus `json:"status"`
	JoinedAt         time.Time         `json:"joinedAt"`
	Preferences      *Preferences      `json:"preferences"`
	SwipedActivities []string          `json:"swipedActivities"`
	LikedActivities  []string          `json:"likedActivities"`
}

type ParticipantStatus string

const (
	ParticipantStatusJoining   ParticipantStatus = "joining"
	ParticipantStatusReady     ParticipantStatus = "ready" // preferences submitted, or the host
	ParticipantStatusSwiping   ParticipantStatus = "swiping"
	ParticipantStatusCompleted ParticipantStatus = "completed"
)

func (ps ParticipantStatus) String() string {
	return string(ps)
}

// Preferences is the snapshot a participant submits. Distances are miles,
// budget is currency units, the rest are client defined scales.
type Preferences struct {
	MaxDistance        float64 `json:"maxDistance"`
	Budget             float64 `json:"budget"`
	DrivingWillingness float64 `json:"drivingWillingness"`
	GroupSize          float64 `json:"groupSize"`
	TimeFlexibility    float64 `json:"timeFlexibility"`
}

type UpdatePreferences struct {
	RoomCode      string `json:"-"`
	ParticipantID string `json:"-"`

	MaxDistance        *float64 `json:"maxDistance"`
	Budget             *float64 `json:"budget"`
	DrivingWillingness *float64 `json:"drivingWillingness"`
	GroupSize          *float64 `json:"groupSize"`
	TimeFlexibility    *float64 `json:"timeFlexibility"`
}

// Preferences must only be called after a successful Validate.
func (in UpdatePreferences) Preferences() Preferences {
	return Preferences{
		MaxDistance:        ptr.Or(in.MaxDistance, 0),
		Budget:             ptr.Or(in.Budget, 0),
		DrivingWillingness: ptr.Or(in.DrivingWillingness, 0),
		GroupSize:          ptr.Or(in.GroupSize, 0),
		TimeFlexibility:    ptr.Or(in.TimeFlexibility, 0),
	}
}

func (in *UpdatePreferences) Validate() error {
	v := validator.New()

	in.RoomCode = id.NormalizeRoomCode(in.RoomCode)
	in.ParticipantID = strings.TrimSpace(in.ParticipantID)

	for _, f := range []struct {
		field string
		value *float64
	}{
		{"maxDistance", in.MaxDistance},
		{"budget", in.Budget},
		{"drivingWillingness", in.DrivingWillingness},
		{"groupSize", in.GroupSize},
		{"timeFlexibility", in.TimeFlexibility},
	} {
		switch {
		case f.value == nil:
			v.AddError(f.field, "is required")
		case math.IsNaN(*f.value) || math.IsInf(*f.value, 0):
			v.AddError(f.field, "must be a finite number")
		case *f.value < 0:
			v.AddError(f.field, "cannot be negative")
		}
	}

	return v.AsError()
}

type SubmitSwipes struct {
	RoomCode      string `json:"-"`
	ParticipantID string `json:"-"`

	LikedActivities  []string `json:"likedActivities"`
	PassedActivities []string `json:"passedActivities"`
}

// SwipedActivities is liked followed by passed.
func (in SubmitSwipes) SwipedActivities() []string {
	out := make([]string, 0, len(in.LikedActivities)+len(in.PassedActivities))
	out = append(out, in.LikedActivities...)
	return append(out, in.PassedActivities...)
}

func (in *SubmitSwipes) Validate() error {
	v := validator.New()

	in.RoomCode = id.NormalizeRoomCode(in.RoomCode)
	in.ParticipantID = strings.TrimSpace(in.ParticipantID)

	if in.LikedActivities == nil {
		in.LikedActivities = []string{}
	}
	if in.PassedActivities == nil {
		in.PassedActivities = []string{}
	}

	seen := map[string]string{}
	check := func(field string, titles []string) {
		for _, title := range titles {
			if !catalog.Has(title) {
				v.AddError(field, fmt.Sprintf("unknown activity %q", title))
				continue
			}
			if prev, ok := seen[title]; ok {
				if prev == field {
					v.AddError(field, fmt.Sprintf("duplicate activity %q", title))
				} else {
					v.AddError(field, fmt.Sprintf("activity %q is both liked and passed", title))
				}
				continue
			}
			seen[title] = field
		}
	}
	check("likedActivities", in.LikedActivities)
	check("passedActivities", in.PassedActivities)

	return v.AsError()
}
