package tapejson

import "fmt"

// ObjectIter walks the members of an object View in document order. It is
// constructed by View.AsObject and is cheap to copy; advancing one copy
// never affects another.
type ObjectIter struct {
	doc  *Document
	end  int // tape index of the ObjectEnd record
	next int // tape index of the next Key record, or end
}

// More reports whether Next has at least one more pair to return.
func (it ObjectIter) More() bool {
	return it.next < it.end
}

// Next returns the raw key bytes (the string contents between the quotes,
// escapes not yet decoded — see UnescapeString) and a View over the
// matching value, then advances past that member. Once More reports false,
// Next returns a nil key, a zero View and ok == false.
func (it *ObjectIter) Next() (key []byte, value View, ok bool) {
	if it.next >= it.end {
		return nil, View{}, false
	}
	keyRec := it.doc.Tape[it.next]
	if keyRec.Kind != Key {
		panic(fmt.Sprintf("tapejson: malformed tape: expected Key at index %d, found %s", it.next, keyRec.Kind))
	}
	valueIdx := it.next + 1
	valueRec := it.doc.Tape[valueIdx]

	if valueRec.Kind == ObjectBegin || valueRec.Kind == ArrayBegin {
		it.next = int(valueRec.Jump) + 1
	} else {
		it.next = valueIdx + 1
	}

	key = it.doc.Buffer[keyRec.Offset+1 : keyRec.Offset+keyRec.Length-1]
	return key, View{doc: it.doc, idx: valueIdx}, true
}

// ArrayIter walks the elements of an array View in document order. It is
// constructed by View.AsArray and is cheap to copy.
type ArrayIter struct {
	doc  *Document
	end  int // tape index of the ArrayEnd record
	next int // tape index of the next element, or end
}

// More reports whether Next has at least one more element to return.
func (it ArrayIter) More() bool {
	return it.next < it.end
}

// Next returns a View over the next element and advances past it. Once
// More reports false, Next returns a zero View and ok == false.
func (it *ArrayIter) Next() (value View, ok bool) {
	if it.next >= it.end {
		return View{}, false
	}
	idx := it.next
	rec := it.doc.Tape[idx]

	if rec.Kind == ObjectBegin || rec.Kind == ArrayBegin {
		it.next = int(rec.Jump) + 1
	} else {
		it.next = idx + 1
	}

	return View{doc: it.doc, idx: idx}, true
}
