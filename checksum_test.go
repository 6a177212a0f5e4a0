package tapejson

import "testing"

func TestFingerprintStableAndSensitive(t *testing.T) {
	doc1, err := Scan([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	doc2, err := Scan([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	doc3, err := Scan([]byte(`{"a":2}`))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if doc1.Fingerprint() != doc2.Fingerprint() {
		t.Fatal("Fingerprint() differs for identical content")
	}
	if doc1.Fingerprint() == doc3.Fingerprint() {
		t.Fatal("Fingerprint() collided for different content")
	}
}

func TestFieldFingerprint(t *testing.T) {
	doc, err := Scan([]byte(`{"a":"x","b":"x"}`))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	obj, _ := doc.Root().AsObject()
	_, aValue, _ := obj.Next()
	_, bValue, _ := obj.Next()
	if aValue.FieldFingerprint() != bValue.FieldFingerprint() {
		t.Fatal("FieldFingerprint() differs for identical field content")
	}
}
