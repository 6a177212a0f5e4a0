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

package tapejson

// Scan classifies buf in a single left-to-right pass and returns the
// resulting Document, or a ScanError if buf is not well-formed minified
// JSON. On success the Document's Buffer field aliases buf directly — the
// caller must keep buf alive and unmodified for as long as the Document
// (and any View derived from it) is in use.
//
// The input contract assumes buf is already a single minified JSON object
// (or, per the state machine, array): no interior whitespace outside
// strings, UTF-8 encoded. Scan never faults on malformed or even invalid
// UTF-8 input; it returns a ScanError or — on pathological input that
// happens not to trip any of the three error causes — a tape whose
// contents are unspecified but whose offsets are in-bounds and whose Jump
// pointers are well-nested.
func Scan(buf []byte, opts ...Option) (*Document, error) {
	s := newSettings(opts...)

	if len(buf) == 0 {
		return nil, errEmpty("zero-length input")
	}
	if buf[0] != '{' && buf[0] != '[' {
		return nil, errEmpty("first byte is %q, want '{' or '['", buf[0])
	}

	classifier := s.backend.classifier()
	marks, truncated := buildMarks(buf, classifier)
	if truncated {
		return nil, errTruncated(len(buf), "input ends inside an open string")
	}

	var reuseTape Tape
	if s.reuse != nil {
		reuseTape = s.reuse.Tape
	}

	sc := newScanner(buf, marks, s.checked, reuseTape)
	if err := sc.run(); err != nil {
		return nil, err
	}
	if len(sc.stack) != 0 {
		// Unreachable: run() only returns nil once every pushed frame has
		// been popped. Kept as a cheap invariant check rather than a
		// silent wrong answer if that ever stops being true.
		return nil, errTruncated(len(buf), "unclosed containers remain")
	}
	// The last record is the top-level End; anything after it is rejected.
	if end := sc.tape[len(sc.tape)-1]; int(end.Offset) != len(buf)-1 {
		return nil, errStructural(int(end.Offset)+1, "trailing bytes after the top-level value")
	}

	return &Document{Buffer: buf, Tape: sc.tape}, nil
}
