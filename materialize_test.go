package jsn

import "testing"

func TestMaterializeAt(t *testing.T) {
	src := []byte(`{"a":1,"b":[true,null,"x"]}`)
	p := 0
	v, err := MaterializeAt(src, &p)
	if err != nil {
		t.Fatalf("MaterializeAt() error = %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("MaterializeAt() = %T, want map[string]any", v)
	}
	if m["a"].(float64) != 1 {
		t.Errorf("a = %v, want 1", m["a"])
	}
	arr, ok := m["b"].([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("b = %v, want a 3-element slice", m["b"])
	}
	if p != len(src) {
		t.Errorf("p = %d, want %d", p, len(src))
	}
}

func TestMaterializePath(t *testing.T) {
	src := []byte(`{"a":{"b":[1,2,3]}}`)
	p := 0
	v, err := MaterializePath(src, &p, []PathStep{"a", "b"})
	if err != nil {
		t.Fatalf("MaterializePath() error = %v", err)
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("MaterializePath() = %v, want a 3-element slice", v)
	}
	if arr[1].(float64) != 2 {
		t.Errorf("arr[1] = %v, want 2", arr[1])
	}
}

func TestMaterializePath_NotFound(t *testing.T) {
	src := []byte(`{"a":1}`)
	p := 0
	_, err := MaterializePath(src, &p, []PathStep{"z"})
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMaterializeAt_NestedArrayOfObjects(t *testing.T) {
	src := []byte(`[{"x":1},{"x":2}]`)
	p := 0
	v, err := MaterializeAt(src, &p)
	if err != nil {
		t.Fatalf("MaterializeAt() error = %v", err)
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("MaterializeAt() = %v, want a 2-element slice", v)
	}
	for i, want := range []float64{1, 2} {
		m, ok := arr[i].(map[string]any)
		if !ok || m["x"].(float64) != want {
			t.Errorf("arr[%d] = %v, want map with x = %v", i, arr[i], want)
		}
	}
}

func TestStrictScanner_ValidInput(t *testing.T) {
	v := NewStrictScanner()
	v.Reset()
	for _, b := range []byte(`{"a":1,"b":[1,2,3]}`) {
		if err := v.Step(b); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	ok, err := v.Done()
	if err != nil {
		t.Fatalf("Done() error = %v", err)
	}
	if !ok {
		t.Errorf("Done() = false, want true for well-formed JSON")
	}
}

func TestStrictScanner_InvalidInput(t *testing.T) {
	v := NewStrictScanner()
	v.Reset()
	for _, b := range []byte(`{"a":01}`) {
		if err := v.Step(b); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	ok, err := v.Done()
	if err != nil {
		t.Fatalf("Done() error = %v", err)
	}
	if ok {
		t.Errorf("Done() = true, want false for malformed JSON (leading zero)")
	}
}

func TestGetByPath_StrictScannerAgreesWithSonic(t *testing.T) {
	tests := []string{
		`{"a":true}`,
		`{"a":01}`,
		`{"a":1.}`,
		`{"a":[1,2,]}`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			p1 := 0
			_, err1 := GetByPath([]byte(src), &p1, []PathStep{"a"}, NewStrictScanner(), 0)
			p2 := 0
			_, err2 := GetByPath([]byte(src), &p2, []PathStep{"a"}, NewSonicValidator(), 0)
			if (err1 == nil) != (err2 == nil) {
				t.Errorf("strict scanner err = %v, sonic err = %v, want same validity verdict", err1, err2)
			}
		})
	}
}
