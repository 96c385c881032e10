package corelex

import "io"

// Source is the byte-source adapter contract (spec §6): an opaque producer
// that yields up to n bytes per call and signals EOF with a short read.
//
// Get must return 0 <= k <= len(dst). A return of k == 0 with a nil error
// signals ordinary EOF; the buffer will then consult Wrap. Size optionally
// reports the total known byte count, or 0 if unknown, purely advisory.
// Wrap optionally rotates to a successor source and returns true if more
// bytes may follow; returning false marks the matcher permanently at EOF.
type Source interface {
	Get(dst []byte) (n int, err error)
	Size() int64
	Wrap() bool
}

// ByteSource adapts an in-memory byte slice to Source. It never wraps.
type ByteSource struct {
	data []byte
	pos  int
}

// NewByteSource returns a Source that serves b in full on the first Get
// call (or in chunks, if the caller sized dst smaller than len(b)).
func NewByteSource(b []byte) *ByteSource {
	return &ByteSource{data: b}
}

// Get copies as many remaining bytes as fit into dst.
func (s *ByteSource) Get(dst []byte) (int, error) {
	n := copy(dst, s.data[s.pos:])
	s.pos += n
	return n, nil
}

// Size returns the total number of bytes in the underlying slice.
func (s *ByteSource) Size() int64 {
	return int64(len(s.data))
}

// Wrap always reports no successor source.
func (s *ByteSource) Wrap() bool {
	return false
}

// ReaderSource adapts an io.Reader to Source, for file or interactive
// stream input. It does not know the total size in advance.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource wraps r. Use Matcher.SetBlockSize(1) on the owning
// matcher for interactive, byte-at-a-time refills.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Get reads into dst, translating io.EOF into a plain 0-byte, nil-error
// short read per the Source contract.
func (s *ReaderSource) Get(dst []byte) (int, error) {
	n, err := s.r.Read(dst)
	if err == io.EOF {
		err = nil
	}
	return n, err
}

// Size is unknown for a generic reader.
func (s *ReaderSource) Size() int64 {
	return 0
}

// Wrap reports no successor source; callers needing multi-file input
// chains should implement their own Source with Wrap returning true.
func (s *ReaderSource) Wrap() bool {
	return false
}
