package jsn

import "testing"

func TestAdvanceNS(t *testing.T) {
	tests := []struct {
		src     string
		wantB   byte
		wantEnd int
	}{
		{"x", 'x', 1},
		{"  x", 'x', 3},
		{"\t\n\r x", 'x', 5},
		{"", 0, 0},
		{"   ", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			src := []byte(tt.src)
			p := 0
			b := advanceNS(src, &p)
			if b != tt.wantB {
				t.Errorf("b = %q, want %q", b, tt.wantB)
			}
			if p != tt.wantEnd {
				t.Errorf("p = %d, want %d", p, tt.wantEnd)
			}
		})
	}
}

func TestMatchLiteralTail(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		tail    string
		wantEnd int
		wantErr error
	}{
		{"true", "rue", "rue", 3, nil},
		{"false", "alse", "alse", 4, nil},
		{"null", "ull", "ull", 3, nil},
		{"mismatch", "rux", "rue", 0, ErrUnexpectedToken},
		{"truncated", "ru", "rue", 0, ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			p := 0
			err := matchLiteralTail(src, &p, tt.tail)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && p != tt.wantEnd {
				t.Errorf("p = %d, want %d", p, tt.wantEnd)
			}
		})
	}
}
