package atlas

import "testing"

func TestFlagURL(t *testing.T) {
	if got, want := FlagURL("de"), "https://flagcdn.com/w320/de.png"; got != want {
		t.Errorf("FlagURL(de) = %q, want %q", got, want)
	}
}

func TestFlagEmoji(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"de", "\U0001F1E9\U0001F1EA"},
		{"us", "\U0001F1FA\U0001F1F8"},
		{"NZ", "\U0001F1F3\U0001F1FF"},
		{"d", ""},
		{"deu", ""},
		{"d1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FlagEmoji(tt.code); got != tt.want {
			t.Errorf("FlagEmoji(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
