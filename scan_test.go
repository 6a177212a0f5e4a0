package tapejson

import (
	"errors"
	"testing"
)

func TestScanEndToEnd(t *testing.T) {
	tests := []struct {
		name string
		js   string
	}{
		{"empty object", `{}`},
		{"empty array value", `{"a":[]}`},
		{"nested containers", `{"a":{"b":[1,2,3]},"c":null}`},
		{"escaped quote in string", `{"a":"he said \"hi\""}`},
		{"backslash run before quote", `{"a":"a\\\\"}`},
		{"numbers and bools", `{"a":-1,"b":2.5e10,"c":true,"d":false,"e":null}`},
		{"top level array", `[1,2,3]`},
		{"array of objects", `[{"a":1},{"b":2}]`},
		{"empty string value", `{"a":""}`},
		{"trailing comma before close", `{"a":1,}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Scan([]byte(tt.js), WithChecked(true))
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if doc.Len() == 0 {
				t.Fatalf("Scan() produced an empty tape")
			}
			root := doc.Root()
			if !root.Kind().IsContainer() {
				t.Fatalf("Root() kind = %s, want a container", root.Kind())
			}
		})
	}
}

func TestScanInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		js      string
		wantErr error
	}{
		{"empty buffer", ``, ErrEmpty},
		{"bare primitive", `42`, ErrEmpty},
		{"unterminated object", `{"a":1`, ErrTruncated},
		{"unterminated string", `{"a":"b`, ErrTruncated},
		{"missing colon", `{"a" 1}`, ErrStructural},
		{"mismatched brackets", `{"a":[1,2}`, ErrStructural},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan([]byte(tt.js), WithChecked(true))
			if err == nil {
				t.Fatalf("Scan() error = nil, want %v", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Scan() error = %v, want cause %v", err, tt.wantErr)
			}
		})
	}
}

func TestScanBackendsAgree(t *testing.T) {
	docs := []string{
		`{}`,
		`{"a":1,"b":[1,2,3],"c":{"d":"e"},"f":null,"g":true,"h":false}`,
		`{"long":"` + stringOfLength(100) + `"}`,
		`{"escapes":"a\\b\\\\c\"d"}`,
	}
	for _, js := range docs {
		scalar, err := Scan([]byte(js), WithBackend(BackendScalar))
		if err != nil {
			t.Fatalf("scalar backend: %v", err)
		}
		vector, err := Scan([]byte(js), WithBackend(BackendVector))
		if err != nil {
			t.Fatalf("vector backend: %v", err)
		}
		if len(scalar.Tape) != len(vector.Tape) {
			t.Fatalf("tape length mismatch: scalar=%d vector=%d", len(scalar.Tape), len(vector.Tape))
		}
		for i := range scalar.Tape {
			if scalar.Tape[i] != vector.Tape[i] {
				t.Fatalf("record %d mismatch: scalar=%+v vector=%+v", i, scalar.Tape[i], vector.Tape[i])
			}
		}
	}
}

func TestScanReuse(t *testing.T) {
	doc1, err := Scan([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	doc2, err := Scan([]byte(`{"b":2,"c":3}`), WithReuse(doc1))
	if err != nil {
		t.Fatalf("Scan() reuse error = %v", err)
	}
	if len(doc2.Tape) != 6 {
		t.Fatalf("len(doc2.Tape) = %d, want 6", len(doc2.Tape))
	}
}

func stringOfLength(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
