package eshop

import "testing"

func doc(title string, nsuids ...string) searchDoc {
	return searchDoc{Title: title, NsuidTxt: nsuids}
}

func Test_bestMatch(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []searchDoc
		want       string
	}{
		{
			name:  "exact match wins",
			query: "Hades",
			candidates: []searchDoc{
				doc("Hades II", "7002"),
				doc("Hades", "7001"),
			},
			want: "7001",
		},
		{
			name:  "case and spacing ignored",
			query: "the legend of zelda",
			candidates: []searchDoc{
				doc("The Legend Of Zelda", "7003"),
				doc("Zelda Chess", "7004"),
			},
			want: "7003",
		},
		{
			name:  "tie keeps the earliest candidate",
			query: "Foo",
			candidates: []searchDoc{
				doc("Food", "7005"),
				doc("Foos", "7006"),
			},
			want: "7005",
		},
		{
			name:  "winner without nsuid is a miss",
			query: "Foo",
			candidates: []searchDoc{
				doc("Foo"),
				doc("Foobar", "7007"),
			},
			want: "",
		},
		{
			name:       "no candidates",
			query:      "Foo",
			candidates: nil,
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestMatch(tt.query, tt.candidates); got != tt.want {
				t.Errorf("bestMatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_normalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Legend Of Zelda", "thelegendofzelda"},
		{"  Mario\tKart\n8 ", "mariokart8"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func Test_levenshtein(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"hades", "hades", 0},
		{"hades", "hadesii", 2},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.s1, tt.s2); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
		}
	}
}
