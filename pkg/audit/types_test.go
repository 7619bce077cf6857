package audit

import "testing"

func TestValidValue(t *testing.T) {
	tests := []struct {
		value int
		want  bool
	}{
		{-1, true},
		{0, true},
		{1, true},
		{2, true},
		{3, true},
		{4, false},
		{-2, false},
		{100, false},
	}

	for _, tc := range tests {
		if got := ValidValue(tc.value); got != tc.want {
			t.Errorf("ValidValue(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestParseQuestionID(t *testing.T) {
	tests := []struct {
		id        string
		wantBlock int
		wantQ     int
		wantErr   bool
	}{
		{"b1_q1", 1, 1, false},
		{"b7_q10", 7, 10, false},
		{"b3_q2", 3, 2, false},
		{"block1_q1", 0, 0, true}, // wrong prefix form
		{"b1q1", 0, 0, true},
		{"bX_q1", 0, 0, true},
		{"b1_qY", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			block, q, err := ParseQuestionID(tc.id)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseQuestionID(%q): expected error", tc.id)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuestionID(%q): %v", tc.id, err)
			}
			if block != tc.wantBlock || q != tc.wantQ {
				t.Errorf("ParseQuestionID(%q) = (%d, %d), want (%d, %d)",
					tc.id, block, q, tc.wantBlock, tc.wantQ)
			}
		})
	}
}

func TestBlockID(t *testing.T) {
	got, err := BlockID("b6_q5")
	if err != nil {
		t.Fatalf("BlockID: %v", err)
	}
	if got != "block6" {
		t.Errorf("BlockID(b6_q5) = %q, want block6", got)
	}

	if _, err := BlockID("nonsense"); err == nil {
		t.Error("expected error for malformed id")
	}
}
