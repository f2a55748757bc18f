package migration

import "testing"

func Test_convertStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"wish", "wishlist", true},
		{"wishlist", "wishlist", true},
		{"own", "owned", true},
		{"OWNED", "owned", true},
		{" backlog ", "backlog", true},
		{"playing", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := convertStatus(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("convertStatus(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func Test_convertPlatform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nintendo Switch", "switch"},
		{"nx", "switch"},
		{"switch", "switch"},
		{"PS5", "ps5"},
	}

	for _, tt := range tests {
		if got := convertPlatform(tt.in); got != tt.want {
			t.Errorf("convertPlatform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
