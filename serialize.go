package tapejson

// AppendJSON appends the minified JSON text of the subtree rooted at v to
// dst and returns the extended slice.
//
// AppendJSON never decodes anything: since Scan's input contract requires
// already-minified JSON, the bytes spanning a record (or, for a container,
// spanning its Begin record's offset through its matching End record's
// offset+1) already are that subtree's minified JSON text. AppendJSON is
// therefore a single bounds-checked slice copy, an optional adapter rather
// than a core scanning operation.
func (v View) AppendJSON(dst []byte) ([]byte, error) {
	r := v.doc.Tape[v.idx]
	switch {
	case r.Kind.IsPrimitive() || r.Kind == Key:
		return append(dst, v.RawBytes()...), nil
	case r.Kind == ObjectBegin || r.Kind == ArrayBegin:
		end := v.doc.Tape[r.Jump]
		span := v.doc.Buffer[r.Offset : end.Offset+1]
		return append(dst, span...), nil
	default:
		return nil, &ScanError{Cause: CauseStructural, Offset: int(r.Offset), msg: "AppendJSON called on a non-value record"}
	}
}

// MarshalJSON implements json.Marshaler by re-serializing the subtree
// rooted at v.
func (v View) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil)
}
