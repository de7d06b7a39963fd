package types

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nakamauwu/hanghub/id"
	"github.com/nakamauwu/hanghub/textutil"
	"github.com/nakamauwu/hanghub/validator"
)

const (
	DefaultGroupSize = 4
	MaxGroupSize     = 100
)

type RoomStatus string

const (
	RoomStatusWaiting     RoomStatus = "waiting"
	RoomStatusPreferences RoomStatus = "preferences"
	RoomStatusSwiping     RoomStatus = "swiping"
	RoomStatusCompleted   RoomStatus = "completed"
)

func (rs RoomStatus) String() string {
	return string(rs)
}

type Room struct {
	ID           string          `json:"id"`
	Code         string          `json:"roomCode"`
	HangoutName  string          `json:"hangoutName"`
	Location     string          `json:"location"`
	Date         *time.Time      `json:"date"`
	Time         *time.Time      `json:"time"`
	GroupSize    int             `json:"groupSize"`
	HostName     string          `json:"hostName"`
	Status       RoomStatus      `json:"status"`
	Participants []Participant   `json:"participants"`
	Preferences  RoomPreferences `json:"preferences"`
	Activities   RoomActivities  `json:"activities"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RoomPreferences keeps one entry per submission, in submission order.
// Entries are not attributed to participants.
type RoomPreferences struct {
	MaxDistance        []float64 `json:"maxDistance"`
	Budget             []float64 `json:"budget"`
	DrivingWillingness []float64 `json:"drivingWillingness"`
	GroupSize          []float64 `json:"groupSize"`
	TimeFlexibility    []float64 `json:"timeFlexibility"`
}

func (rp *RoomPreferences) Append(p Preferences) {
	rp.MaxDistance = append(rp.MaxDistance, p.MaxDistance)
	rp.Budget = append(rp.Budget, p.Budget)
	rp.DrivingWillingness = append(rp.DrivingWillingness, p.DrivingWillingness)
	rp.GroupSize = append(rp.GroupSize, p.GroupSize)
	rp.TimeFlexibility = append(rp.TimeFlexibility, p.TimeFlexibility)
}

type RoomActivities struct {
	Liked   []string `json:"liked"`
	Passed  []string `json:"passed"`
	Matches []string `json:"matches"`
}

// EnsureArrays replaces nil slices with empty ones so they encode as [] and not null.
func (r *Room) EnsureArrays() {
	for _, s := range []*[]float64{
		&r.Preferences.MaxDistance,
		&r.Preferences.Budget,
		&r.Preferences.DrivingWillingness,
		&r.Preferences.GroupSize,
		&r.Preferences.TimeFlexibility,
	} {
		if *s == nil {
			*s = []float64{}
		}
	}

	for _, s := range []*[]string{
		&r.Activities.Liked,
		&r.Activities.Passed,
		&r.Activities.Matches,
	} {
		if *s == nil {
			*s = []string{}
		}
	}

	if r.Participants == nil {
		r.Participants = []Participant{}
	}

	for i := range r.Participants {
		if r.Participants[i].SwipedActivities == nil {
			r.Participants[i].SwipedActivities = []string{}
		}
		if r.Participants[i].LikedActivities == nil {
			r.Participants[i].LikedActivities = []string{}
		}
	}
}

type CreateRoom struct {
	HangoutName string     `json:"hangoutName"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date"`
	Time        *time.Time `json:"time"`
	GroupSize   int        `json:"groupSize"`
	HostName    string     `json:"hostName"`

	roomID string
	code   string
	hostID string
}

func (in *CreateRoom) SetRoomID(id string) {
	in.roomID = id
}

func (in CreateRoom) RoomID() string {
	return in.roomID
}

func (in *CreateRoom) SetCode(code string) {
	in.code = code
}

func (in CreateRoom) Code() string {
	return in.code
}

func (in *CreateRoom) SetHostID(id string) {
	in.hostID = id
}

func (in CreateRoom) HostID() string {
	return in.hostID
}

func (in *CreateRoom) Validate() error {
	v := validator.New()

	in.HangoutName = textutil.SmartTrim(in.HangoutName)
	in.Location = textutil.SmartTrim(in.Location)
	in.HostName = textutil.SmartTrim(in.HostName)

	v.Check(in.HangoutName != "", "hangoutName", "Hangout name is required")
	v.Check(utf8.RuneCountInString(in.HangoutName) <= 100, "hangoutName", "Hangout name must be at most 100 characters")

	v.Check(in.Location != "", "location", "Location is required")
	v.Check(utf8.RuneCountInString(in.Location) <= 200, "location", "Location must be at most 200 characters")

	validateName(v, "hostName", "Host name", in.HostName)

	v.Check(in.GroupSize >= 0, "groupSize", "Group size cannot be negative")
	v.Check(in.GroupSize <= MaxGroupSize, "groupSize", "Group size must be at most 100")
	if in.GroupSize == 0 {
		in.GroupSize = DefaultGroupSize
	}

	return v.AsError()
}

type JoinRoom struct {
	RoomCode string `json:"-"`
	UserName string `json:"userName"`

	participantID string
}

func (in *JoinRoom) SetParticipantID(id string) {
	in.participantID = id
}

func (in JoinRoom) ParticipantID() string {
	return in.participantID
}

// Validate normalizes the room code. Callers map a malformed code to
// ErrRoomNotFound before calling it so a bad code reads as a missing room.
func (in *JoinRoom) Validate() error {
	v := validator.New()

	in.RoomCode = id.NormalizeRoomCode(in.RoomCode)
	in.UserName = textutil.SmartTrim(in.UserName)

	validateName(v, "userName", "User name", in.UserName)

	return v.AsError()
}

func validateName(v *validator.Validator, field, label, name string) {
	v.Check(name != "", field, label+" is required")
	v.Check(utf8.RuneCountInString(name) <= 50, field, label+" must be at most 50 characters")
	v.Check(!strings.ContainsFunc(name, isControl), field, label+" contains invalid characters")
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
