package catalog

import "testing"

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("expected 10 activities, got %d", len(all))
	}

	ids := map[int]struct{}{}
	titles := map[string]struct{}{}
	for _, a := range all {
		if _, ok := ids[a.ID]; ok {
			t.Errorf("duplicate id %d", a.ID)
		}
		ids[a.ID] = struct{}{}

		if _, ok := titles[a.Title]; ok {
			t.Errorf("duplicate title %q", a.Title)
		}
		titles[a.Title] = struct{}{}

		if a.Emoji == "" || a.Description == "" || a.Category == "" {
			t.Errorf("incomplete activity %+v", a)
		}
	}

	all[0].Title = "changed"
	if All()[0].Title != "Bowling Night" {
		t.Error("All() should return a copy")
	}
}

func TestHas(t *testing.T) {
	tt := []struct {
		title string
		want  bool
	}{
		{"Bowling Night", true},
		{"Beach Volleyball", true},
		{"bowling night", false},
		{"Skydiving", false},
		{"", false},
	}
	for _, tc := range tt {
		t.Run(tc.title, func(t *testing.T) {
			if got := Has(tc.title); got != tc.want {
				t.Errorf("Has(%q) = %v, want %v", tc.title, got, tc.want)
			}
		})
	}
}
