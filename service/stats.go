package service

import (
	"cmp"
	"slices"

	"github.com/nakamauwu/hanghub/types"
)

// Stats aggregates a room snapshot. It never fails: averages over an
// empty array are zero.
func Stats(room types.Room) types.RoomStats {
	out := types.RoomStats{
		ParticipantCount: len(room.Participants),
		AveragePreferences: types.Preferences{
			MaxDistance:        average(room.Preferences.MaxDistance),
			Budget:             average(room.Preferences.Budget),
			DrivingWillingness: average(room.Preferences.DrivingWillingness),
			GroupSize:          average(room.Preferences.GroupSize),
			TimeFlexibility:    average(room.Preferences.TimeFlexibility),
		},
		ActivityStats: types.ActivityStats{
			TotalLikes:        len(room.Activities.Liked),
			TotalPasses:       len(room.Activities.Passed),
			PopularActivities: map[string]int{},
			TopActivities:     []types.ActivityCount{},
			Matches:           []string{},
		},
	}

	for _, title := range room.Activities.Liked {
		out.ActivityStats.PopularActivities[title]++
	}

	for title, likes := range out.ActivityStats.PopularActivities {
		out.ActivityStats.TopActivities = append(out.ActivityStats.TopActivities, types.ActivityCount{
			Title: title,
			Likes: likes,
		})
	}

	slices.SortFunc(out.ActivityStats.TopActivities, func(a, b types.ActivityCount) int {
		if c := cmp.Compare(b.Likes, a.Likes); c != 0 {
			return c
		}
		return cmp.Compare(a.Title, b.Title)
	})

	// Matches come from each completed participant's latest liked list.
	// The room arrays keep every submission, resubmissions included.
	var completed []types.Participant
	for _, p := range room.Participants {
		if p.Status == types.ParticipantStatusCompleted {
			completed = append(completed, p)
		}
	}

	out.CompletedParticipants = len(completed)

	if len(completed) > 0 {
		for _, ac := range out.ActivityStats.TopActivities {
			if likedByAll(completed, ac.Title) {
				out.ActivityStats.Matches = append(out.ActivityStats.Matches, ac.Title)
			}
		}
	}

	return out
}

func likedByAll(participants []types.Participant, title string) bool {
	for _, p := range participants {
		if !slices.Contains(p.LikedActivities, title) {
			return false
		}
	}
	return true
}

func average(ff []float64) float64 {
	if len(ff) == 0 {
		return 0
	}

	var sum float64
	for _, f := range ff {
		sum += f
	}
	return sum / float64(len(ff))
}
