package types

type RoomStats struct {
	ParticipantCount      int           `json:"participantCount"`
	CompletedParticipants int           `json:"completedParticipants"`
	AveragePreferences    Preferences   `json:"averagePreferences"`
	ActivityStats         ActivityStats `json:"activityStats"`
}

type ActivityStats struct {
	TotalLikes        int             `json:"totalLikes"`
	TotalPasses       int             `json:"totalPasses"`
	PopularActivities map[string]int  `json:"popularActivities"`
	TopActivities     []ActivityCount `json:"topActivities"`
	Matches           []string        `json:"matches"`
}

type ActivityCount struct {
	Title string `json:"title"`
	Likes int    `json:"likes"`
}
