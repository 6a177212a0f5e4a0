package tapejson

// buildMarks makes a single left-to-right pass over buf, classifying it
// blockWidth bytes at a time, and produces an ordered list of "marks": the
// byte offset of every structural character, every unescaped (real) quote,
// and every primitive-start position. The tape builder does nothing but
// walk this list and dispatch on buf[mark].
//
// A primitive begins at offset i when byte i is not in a string, not a
// structural character, and the byte immediately before it was either a
// structural trigger character (':', ',', '[') or the start of the
// document.
//
// truncatedInString reports whether the buffer ended while a string was
// still open, which the caller must turn into ErrTruncated.
func buildMarks(buf []byte, classifier blockClassifier) (marks []uint32, truncatedInString bool) {
	var carry stringCarry
	prevTrigger := true // the start of the document counts as a trigger
	n := len(buf)

	// A rough pre-allocation: structural documents rarely have more than
	// one mark per 3-4 bytes.
	marks = make([]uint32, 0, n/3+8)

	var tmp [blockWidth]byte
	for start := 0; start < n; start += blockWidth {
		end := start + blockWidth
		var block []byte
		if end <= n {
			block = buf[start:end]
		} else {
			for i := range tmp {
				tmp[i] = 0
			}
			copy(tmp[:], buf[start:n])
			block = tmp[:]
		}

		cls := classifier(block)
		inStringMask, structMask, realQuotes := resolveStringMask(cls, &carry)

		limit := blockWidth
		if end > n {
			limit = n - start
		}
		for i := 0; i < limit; i++ {
			bit := uint32(1) << uint(i)
			offset := uint32(start + i)
			switch {
			case structMask&bit != 0:
				marks = append(marks, offset)
				switch buf[offset] {
				case ':', ',', '[':
					prevTrigger = true
				default:
					prevTrigger = false
				}
			case realQuotes&bit != 0:
				marks = append(marks, offset)
				prevTrigger = false
			case inStringMask&bit != 0:
				prevTrigger = false
			default:
				if prevTrigger {
					marks = append(marks, offset)
					prevTrigger = false
				}
			}
		}
	}
	return marks, carry.inString
}
