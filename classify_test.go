package tapejson

import "testing"

func TestClassifyScalarAndVectorAgree(t *testing.T) {
	blocks := []string{
		`{"a":"b","c":1}`,
		`                                `,
		`"escaped \" quote and \\ backslash run\\\\"`,
		`[1,2,3],[4,5,6],{"x":true}     `,
		``,
	}
	for _, s := range blocks {
		var block [blockWidth]byte
		copy(block[:], s)
		scalar := classifyScalar(block[:])
		vector := classifyVector(block[:])
		if scalar != vector {
			t.Fatalf("classify mismatch for %q:\n scalar=%+v\n vector=%+v", s, scalar, vector)
		}
	}
}

func TestHasByteWord(t *testing.T) {
	tests := []struct {
		word uint64
		c    byte
		want bool
	}{
		{0x0000000000000000, 'a', false},
		{0x6100000000000000, 'a', true}, // 'a' in the top byte
		{0x0000000000000061, 'a', true}, // 'a' in the bottom byte
		{0x6262626262626262, 'a', false},
	}
	for _, tt := range tests {
		got := hasByteWord(tt.word, tt.c) != 0
		if got != tt.want {
			t.Fatalf("hasByteWord(%#x, %q) = %v, want %v", tt.word, tt.c, got, tt.want)
		}
	}
}

func TestBackendClassifierSelection(t *testing.T) {
	if BackendScalar.classifier() == nil {
		t.Fatal("BackendScalar.classifier() returned nil")
	}
	if BackendVector.classifier() == nil {
		t.Fatal("BackendVector.classifier() returned nil")
	}
	if BackendAuto.classifier() == nil {
		t.Fatal("BackendAuto.classifier() returned nil")
	}
	if DefaultBackend() != BackendAuto {
		t.Fatalf("DefaultBackend() = %v, want BackendAuto", DefaultBackend())
	}
}
