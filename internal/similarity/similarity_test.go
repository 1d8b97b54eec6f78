package similarity

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "hello", "hello", 100},
		{"identical ignoring case", "Hello", "hELLO", 100},
		{"both empty", "", "", 100},
		{"one empty", "word", "", 0},
		{"single edit", "cat", "bat", 67},
		{"half match", "ab", "ax", 50},
		{"unrelated", "abc", "xyz", 0},
		{"unicode runes", "tiếng", "tieng", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"apple", "aple"},
		{"", "x"},
		{"banana", "bandana"},
	}
	for _, p := range pairs {
		if Score(p[0], p[1]) != Score(p[1], p[0]) {
			t.Errorf("Score(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestScoreBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "completely different"},
		{"short", "muchmuchlonger"},
		{"xxxx", "yyyy"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 100 {
			t.Errorf("Score(%q, %q) = %d, out of [0, 100]", p[0], p[1], got)
		}
	}
}
