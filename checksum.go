package tapejson

import "github.com/zeebo/xxh3"

// Fingerprint returns a 64-bit content hash of the scanned buffer, suitable
// as a dedup or cache key for a document store built on top of Scan —
// the natural companion to a tape scanner that otherwise never copies or
// hashes the input itself. Grounded on the xxh3-based document _id hashing
// used elsewhere in the retrieved pack, swapped to operate on the whole
// buffer rather than a single label field.
func (d *Document) Fingerprint() uint64 {
	return xxh3.Hash(d.Buffer)
}

// FieldFingerprint hashes a single record's raw byte span, letting a caller
// fingerprint one field (say, a primary key value) without touching the
// rest of the document.
func (v View) FieldFingerprint() uint64 {
	return xxh3.Hash(v.RawBytes())
}
