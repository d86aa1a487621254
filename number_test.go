package jsn

import "testing"

func TestSkipNumberFast(t *testing.T) {
	tests := []struct {
		src     string
		wantEnd int
		wantErr error
	}{
		{"0", 1, nil},
		{"123", 3, nil},
		{"-123", 4, nil},
		{"1.5", 3, nil},
		{"1.5e10", 6, nil},
		{"1E+10", 5, nil},
		{"1e-10", 5, nil},
		{"01", 2, nil},        // fast path is lenient about leading zero
		{"1.", 1, nil},        // trailing dot with no digit is not consumed
		{"1e", 1, nil},        // trailing exponent marker with no digit not consumed
		{"-", 1, ErrInvalidNumber},
		{"-a", 1, ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			src := []byte(tt.src)
			p := 1 // one byte past the first number byte
			start, err := skipNumberFast(src, &p)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if start != 0 {
				t.Errorf("start = %d, want 0", start)
			}
			if err == nil && p != tt.wantEnd {
				t.Errorf("p = %d, want %d", p, tt.wantEnd)
			}
		})
	}
}

func TestSkipNumberStrict(t *testing.T) {
	tests := []struct {
		src     string
		wantEnd int
		wantErr error
	}{
		{"0", 1, nil},
		{"123", 3, nil},
		{"-123", 4, nil},
		{"1.5", 3, nil},
		{"1.5e10", 6, nil},
		{"0.5", 3, nil},
		{"01", 0, ErrInvalidNumber},
		{"1.", 0, ErrInvalidNumber},
		{"1e", 0, ErrInvalidNumber},
		{"1e+", 0, ErrInvalidNumber},
		{"-", 0, ErrInvalidNumber},
		{"-a", 0, ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			src := []byte(tt.src)
			p := 1
			start, err := skipNumberStrict(src, &p)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if start != 0 {
				t.Errorf("start = %d, want 0", start)
			}
			if err == nil && p != tt.wantEnd {
				t.Errorf("p = %d, want %d", p, tt.wantEnd)
			}
		})
	}
}
