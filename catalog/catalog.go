// Package catalog holds the fixed list of activities participants swipe on.
package catalog

import (
	"slices"

	"github.com/nakamauwu/hanghub/emoji"
)

type Category string

const (
	CategoryEntertainment Category = "Entertainment"
	CategoryFoodAndDrink  Category = "Food & Drink"
	CategoryOutdoor       Category = "Outdoor"
	CategoryAdventure     Category = "Adventure"
	CategoryCulture       Category = "Culture"
	CategorySports        Category = "Sports"
)

type Activity struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Emoji       string   `json:"emoji"`
	Time        string   `json:"time"`
	Cost        string   `json:"cost"`
}

var activities = []Activity{
	{
		ID:          1,
		Title:       "Bowling Night",
		Description: "Strike up some fun at the local bowling alley",
		Category:    CategoryEntertainment,
		Emoji:       emoji.Lookup(":bowling:", "\U0001f3b3"),
		Time:        "2-3 hours",
		Cost:        "$15-25",
	},
	{
		ID:          2,
		Title:       "Coffee Shop Hangout",
		Description: "Chill conversation over great coffee",
		Category:    CategoryFoodAndDrink,
		Emoji:       emoji.Lookup(":coffee:", "☕"),
		Time:        "1-2 hours",
		Cost:        "$5-10",
	},
	{
		ID:          3,
		Title:       "Mini Golf",
		Description: "18 holes of mini golf competition",
		Category:    CategoryOutdoor,
		Emoji:       emoji.Lookup(":golf:", "⛳"),
		Time:        "1-2 hours",
		Cost:        "$10-15",
	},
	{
		ID:          4,
		Title:       "Movie Theater",
		Description: "Catch the latest blockbuster",
		Category:    CategoryEntertainment,
		Emoji:       emoji.Lookup(":clapper:", "\U0001f3ac"),
		Time:        "2-3 hours",
		Cost:        "$12-18",
	},
	{
		ID:          5,
		Title:       "Escape Room",
		Description: "Work together to solve puzzles and escape",
		Category:    CategoryAdventure,
		Emoji:       emoji.Lookup(":closed_lock_with_key:", "\U0001f510"),
		Time:        "1 hour",
		Cost:        "$25-35",
	},
	{
		ID:          6,
		Title:       "Hiking Trail",
		Description: "Explore nature on a scenic trail",
		Category:    CategoryOutdoor,
		Emoji:       emoji.Lookup(":hiking_boot:", "\U0001f97e"),
		Time:        "2-4 hours",
		Cost:        "Free",
	},
	{
		ID:          7,
		Title:       "Karaoke Night",
		Description: "Sing your heart out with friends",
		Category:    CategoryEntertainment,
		Emoji:       emoji.Lookup(":microphone:", "\U0001f3a4"),
		Time:        "2-3 hours",
		Cost:        "$20-30",
	},
	{
		ID:          8,
		Title:       "Food Truck Festival",
		Description: "Try diverse cuisines from local food trucks",
		Category:    CategoryFoodAndDrink,
		Emoji:       emoji.Lookup(":truck:", "\U0001f69a"),
		Time:        "1-2 hours",
		Cost:        "$15-25",
	},
	{
		ID:          9,
		Title:       "Art Museum",
		Description: "Explore creative exhibitions and culture",
		Category:    CategoryCulture,
		Emoji:       emoji.Lookup(":art:", "\U0001f3a8"),
		Time:        "2-3 hours",
		Cost:        "$12-20",
	},
	{
		ID:          10,
		Title:       "Beach Volleyball",
		Description: "Fun in the sun with competitive games",
		Category:    CategorySports,
		Emoji:       emoji.Lookup(":volleyball:", "\U0001f3d0"),
		Time:        "2-3 hours",
		Cost:        "Free",
	},
}

var titles = func() map[string]struct{} {
	out := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		out[a.Title] = struct{}{}
	}
	return out
}()

// All returns a copy of the catalog in display order.
func All() []Activity {
	return slices.Clone(activities)
}

func Has(title string) bool {
	_, ok := titles[title]
	return ok
}
