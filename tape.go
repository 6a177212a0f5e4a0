/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tapejson scans minified JSON objects into a flat tape of typed
// byte offsets, instead of a tree of decoded values. Downstream code walks
// the tape to locate, skip, or selectively decode fields: a query touching
// two fields of a hundred-field document only pays the decoding cost of
// those two fields.
package tapejson

import "fmt"

// Kind is the lexical class of a tape record.
type Kind uint8

// Record kinds. Values are chosen so zero is never a valid kind, which
// makes an accidentally-zeroed Record easy to spot in a debugger.
const (
	_ Kind = iota
	ObjectBegin
	ObjectEnd
	ArrayBegin
	ArrayEnd
	Key
	String
	Number
	True
	False
	Null
)

// String renders the Kind for debugging and error messages.
func (k Kind) String() string {
	switch k {
	case ObjectBegin:
		return "ObjectBegin"
	case ObjectEnd:
		return "ObjectEnd"
	case ArrayBegin:
		return "ArrayBegin"
	case ArrayEnd:
		return "ArrayEnd"
	case Key:
		return "Key"
	case String:
		return "String"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case Null:
		return "Null"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsContainer reports whether k opens or closes an object or array.
func (k Kind) IsContainer() bool {
	switch k {
	case ObjectBegin, ObjectEnd, ArrayBegin, ArrayEnd:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether k is a scalar value (string, number, bool, null).
// Key is deliberately excluded: it shares String's byte layout but is not a value.
func (k Kind) IsPrimitive() bool {
	switch k {
	case String, Number, True, False, Null:
		return true
	default:
		return false
	}
}

// Record is a single fixed-width tape entry describing one lexical item.
//
// Offset and Length describe the item's textual span in the scanned buffer:
// for strings and keys the span includes the surrounding quotes, for
// numbers it is the run of sign/digits/exponent, and for true/false/null
// it is 4 or 5 bytes. Length is unused for container records.
//
// Jump links a container's Begin record to its End record and back: for
// ObjectBegin/ArrayBegin it is the tape index of the matching End; for
// ObjectEnd/ArrayEnd it is the tape index of the matching Begin. It is
// unused for every other kind.
type Record struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Jump   int32
}

// Tape is the ordered, immutable sequence of Records produced by Scan.
// Indices into Tape are the currency of navigation: View and its iterators
// are just a Tape plus a current index.
type Tape []Record

// Document is the result of a successful scan: the original buffer plus
// the tape of records describing its lexical structure. A Document is
// read-only once returned by Scan and safe to share across goroutines;
// the caller must keep Buffer alive for as long as any View derived from
// this Document is used, since every record refers back into it by offset.
type Document struct {
	Buffer []byte
	Tape   Tape
}

// Root returns a View over the top-level container. The documented input
// contract for this scanner is always a top-level object, so Root
// ordinarily points at an ObjectBegin; the state machine also accepts a
// top-level array, but a bare top-level primitive is rejected by Scan with
// ErrEmpty.
func (d *Document) Root() View {
	return View{doc: d, idx: 0}
}

// Len returns the number of records on the tape.
func (d *Document) Len() int {
	return len(d.Tape)
}

// View is a cursor onto a single tape record plus enough context (the
// owning Document) to navigate into children, read raw bytes, or skip
// the subtree in O(1) via Jump.
type View struct {
	doc *Document
	idx int
}

// Kind returns the kind of the record this View points at.
func (v View) Kind() Kind { return v.doc.Tape[v.idx].Kind }

// Offset returns the record's starting byte offset in the buffer.
func (v View) Offset() uint32 { return v.doc.Tape[v.idx].Offset }

// Length returns the record's byte span length.
func (v View) Length() uint32 { return v.doc.Tape[v.idx].Length }

// Index returns the tape index this View points at.
func (v View) Index() int { return v.idx }

// RawBytes returns the raw bytes of a string or primitive record's span,
// including surrounding quotes for strings and keys. It is not valid to
// call RawBytes on a container record.
func (v View) RawBytes() []byte {
	r := v.doc.Tape[v.idx]
	return v.doc.Buffer[r.Offset : r.Offset+r.Length]
}

// AsObject returns an ObjectIter over this View's members. It fails if the
// View does not point at an ObjectBegin record.
func (v View) AsObject() (ObjectIter, error) {
	r := v.doc.Tape[v.idx]
	if r.Kind != ObjectBegin {
		return ObjectIter{}, fmt.Errorf("tapejson: AsObject called on %s", r.Kind)
	}
	return ObjectIter{doc: v.doc, end: int(r.Jump), next: v.idx + 1}, nil
}

// AsArray returns an ArrayIter over this View's elements. It fails if the
// View does not point at an ArrayBegin record.
func (v View) AsArray() (ArrayIter, error) {
	r := v.doc.Tape[v.idx]
	if r.Kind != ArrayBegin {
		return ArrayIter{}, fmt.Errorf("tapejson: AsArray called on %s", r.Kind)
	}
	return ArrayIter{doc: v.doc, end: int(r.Jump), next: v.idx + 1}, nil
}

// End returns the tape index one past this container's matching End
// record, i.e. the index of the next sibling. Valid only on
// ObjectBegin/ArrayBegin views; this is what gives subtree skipping its
// O(1) cost.
func (v View) End() int {
	r := v.doc.Tape[v.idx]
	return int(r.Jump) + 1
}
