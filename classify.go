package tapejson

import "github.com/klauspost/cpuid/v2"

// blockWidth is the classifier's window size in bytes: two 128-bit lanes,
// matching an AVX2 register width so both backends agree on block
// boundaries.
const blockWidth = 32

// classification is the raw per-block output of a block classifier, before
// the string-mask resolver subtracts in-string bytes from structMask.
//
// Bit i of each mask corresponds to byte i of the block.
type classification struct {
	structMask    uint32 // '{' '}' '[' ']' ',' ':' positions (not yet string-aware)
	quoteMask     uint32 // unescaped-or-escaped '"' positions (raw, pre-escape-resolution)
	backslashMask uint32 // '\' positions
}

// blockClassifier classifies one blockWidth-byte window of input, reporting
// which bytes are structural characters, quotes, or backslashes. It must
// not read outside the slice passed to it; callers are responsible for
// padding the final partial block out to blockWidth bytes.
type blockClassifier func(block []byte) classification

// classifyScalar is the reference, byte-at-a-time classifier. It is always
// correct and is used directly on platforms/inputs where the word-parallel
// backend offers no benefit, and as the oracle the vector backend is
// checked against in tests.
func classifyScalar(block []byte) classification {
	var c classification
	for i, b := range block {
		switch b {
		case '{', '}', '[', ']', ',', ':':
			c.structMask |= 1 << uint(i)
		case '"':
			c.quoteMask |= 1 << uint(i)
		case '\\':
			c.backslashMask |= 1 << uint(i)
		}
	}
	return c
}

// hasByteWord is the classic branchless "does any byte in w equal c" SWAR
// trick (Bit Twiddling Hacks, "Determine if a word has a byte equal to n").
// The result is non-zero iff some byte lane of w equals c; the lowest
// matching lane has its high bit (0x80) set, but the subtraction's borrow
// can also set the high bit of a higher lane that does not match, so only
// the zero/non-zero answer is exact. That is all classifyVector needs: it
// tests eight bytes for a match in a handful of integer ops instead of
// eight branches, and skips the lane entirely when the result is zero.
func hasByteWord(w uint64, c byte) uint64 {
	n := uint64(c) * 0x0101010101010101
	x := w ^ n
	return (x - 0x0101010101010101) & ^x & 0x8080808080808080
}

// classifyVector is the word-parallel backend: it tests each 8-byte lane
// of the block against every character class at once via hasByteWord, and
// only falls through to a per-byte scan of a lane when that lane's
// combined hit mask is non-zero. On typical JSON — long runs of string
// content between sparse structural characters — most lanes short-circuit
// without ever inspecting individual bytes.
func classifyVector(block []byte) classification {
	var c classification
	var buf [blockWidth]byte
	copy(buf[:], block)

	for lane := 0; lane < blockWidth; lane += 8 {
		w := uint64(buf[lane]) | uint64(buf[lane+1])<<8 | uint64(buf[lane+2])<<16 |
			uint64(buf[lane+3])<<24 | uint64(buf[lane+4])<<32 | uint64(buf[lane+5])<<40 |
			uint64(buf[lane+6])<<48 | uint64(buf[lane+7])<<56

		hit := hasByteWord(w, '{') | hasByteWord(w, '}') | hasByteWord(w, '[') |
			hasByteWord(w, ']') | hasByteWord(w, ',') | hasByteWord(w, ':') |
			hasByteWord(w, '"') | hasByteWord(w, '\\')
		if hit == 0 {
			continue
		}

		for j := 0; j < 8 && lane+j < len(block); j++ {
			switch buf[lane+j] {
			case '{', '}', '[', ']', ',', ':':
				c.structMask |= 1 << uint(lane+j)
			case '"':
				c.quoteMask |= 1 << uint(lane+j)
			case '\\':
				c.backslashMask |= 1 << uint(lane+j)
			}
		}
	}
	return c
}

// VectorSupported reports whether the current CPU exposes the SIMD-class
// feature tapejson's word-parallel backend is tuned for (AVX2 on amd64,
// ASIMD/NEON on arm64). tapejson never refuses to scan on an unsupported
// CPU — it falls back to classifyScalar, since the two backends are
// required to be byte-identical and there is no correctness reason to
// refuse.
func VectorSupported() bool {
	return cpuid.CPU.Supports(cpuid.AVX2) || cpuid.CPU.Supports(cpuid.ASIMD)
}

// Backend selects which blockClassifier implementation a Scanner uses.
type Backend uint8

const (
	// BackendAuto picks classifyVector when VectorSupported, else
	// classifyScalar. This is the default.
	BackendAuto Backend = iota
	// BackendVector forces the word-parallel classifier regardless of
	// detected CPU features.
	BackendVector
	// BackendScalar forces the byte-at-a-time reference classifier.
	BackendScalar
)

func (b Backend) classifier() blockClassifier {
	switch b {
	case BackendVector:
		return classifyVector
	case BackendScalar:
		return classifyScalar
	default:
		if VectorSupported() {
			return classifyVector
		}
		return classifyScalar
	}
}

// DefaultBackend returns the Backend Scan uses when no WithBackend option
// is supplied.
func DefaultBackend() Backend {
	return BackendAuto
}
