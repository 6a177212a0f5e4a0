package tapejson

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NDResult pairs one newline-delimited line's Document with any error
// scanning it produced: one result per line, since each tapejson Document
// models exactly one top-level value.
type NDResult struct {
	Doc *Document
	Err error
}

// ScanND scans each newline-delimited line of buf independently, the way a
// log-storage engine built on tapejson would ingest a batch of records. A
// malformed line does not abort the batch: its NDResult carries the error
// and scanning continues with the next line. Blank lines are skipped.
func ScanND(buf []byte, opts ...Option) []NDResult {
	var results []NDResult
	start := 0
	for i := 0; i <= len(buf); i++ {
		if i < len(buf) && buf[i] != '\n' {
			continue
		}
		line := buf[start:i]
		start = i + 1
		if len(line) == 0 {
			continue
		}
		doc, err := Scan(line, opts...)
		results = append(results, NDResult{Doc: doc, Err: err})
	}
	return results
}

// ScanNDStream reads newline-delimited JSON from r and scans each line as
// it arrives, delivering one NDResult per line on res. res is closed when r
// is exhausted or a read error (other than io.EOF) occurs; a line that
// fails to scan is reported on res without stopping the stream.
func ScanNDStream(r io.Reader, res chan<- NDResult, opts ...Option) {
	go func() {
		defer close(res)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 64<<20)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			// Scan's Document aliases its input buffer, so the line must be
			// copied out of the scanner's reused internal buffer before
			// handing it across the channel.
			owned := make([]byte, len(line))
			copy(owned, line)
			doc, err := Scan(owned, opts...)
			res <- NDResult{Doc: doc, Err: err}
		}
		if err := scanner.Err(); err != nil {
			res <- NDResult{Err: fmt.Errorf("tapejson: reading stream: %w", err)}
		}
	}()
}

// NewSegmentReader wraps r, transparently zstd-decompressing it. Log
// storage engines commonly keep newline-delimited JSON segments compressed
// at rest; pairing this with ScanNDStream lets a caller scan directly out
// of a compressed segment without staging a decompressed copy.
func NewSegmentReader(r io.Reader) (io.Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("tapejson: opening zstd segment: %w", err)
	}
	return &segmentReader{dec: dec}, nil
}

// segmentReader adapts *zstd.Decoder's Read method plus its non-standard
// Close (which the decoder defines without ever returning an error) to a
// plain io.Reader, while still releasing the decoder's background worker
// goroutines once the caller is done.
type segmentReader struct {
	dec *zstd.Decoder
}

func (s *segmentReader) Read(p []byte) (int, error) {
	return s.dec.Read(p)
}

// Close releases the underlying zstd decoder's resources. Callers that
// type-assert the io.Reader returned by NewSegmentReader to an io.Closer
// should call this once done; it is not required for correctness since the
// decoder is also cleaned up by the garbage collector.
func (s *segmentReader) Close() error {
	s.dec.Close()
	return nil
}
