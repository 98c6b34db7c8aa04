package war

import "testing"

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		data     Data
		expected string
	}{
		{
			name:     "battle day with time",
			data:     Data{State: InWar, TimeRemaining: strPtr("3h 20m"), TimeLabel: strPtr("remaining")},
			expected: "Battle Day • 3h 20m remaining",
		},
		{
			name:     "preparation without label",
			data:     Data{State: Preparation, TimeRemaining: strPtr("12m")},
			expected: "Preparation",
		},
		{
			name:     "cwl round",
			data:     Data{State: WarEnded, Type: CWL, CWLRound: intPtr(3)},
			expected: "War Ended • CWL Round 3",
		},
		{
			name:     "unknown state",
			data:     Data{State: NotInWar},
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.StatusLine(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMaxTotals(t *testing.T) {
	regular := Data{TeamSize: 15, Type: Regular}
	if regular.MaxStars() != 45 || regular.MaxAttacks() != 30 {
		t.Errorf("Expected 45 stars / 30 attacks, got %d / %d", regular.MaxStars(), regular.MaxAttacks())
	}

	cwl := Data{TeamSize: 15, Type: CWL}
	if cwl.MaxAttacks() != 15 {
		t.Errorf("Expected 15 attacks in CWL, got %d", cwl.MaxAttacks())
	}
}

func TestStarsDisplay(t *testing.T) {
	tests := map[int]string{
		-1: "☆☆☆",
		0:  "☆☆☆",
		2:  "★★☆",
		3:  "★★★",
		5:  "★★★",
	}

	for stars, expected := range tests {
		if got := StarsDisplay(stars); got != expected {
			t.Errorf("StarsDisplay(%d): expected %q, got %q", stars, expected, got)
		}
	}
}

func TestClampTownhallLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{13, 13},
		{17, 17},
		{18, 17},
	}

	for _, tt := range tests {
		if got := ClampTownhallLevel(tt.level); got != tt.expected {
			t.Errorf("ClampTownhallLevel(%d): expected %d, got %d", tt.level, tt.expected, got)
		}
	}
}
