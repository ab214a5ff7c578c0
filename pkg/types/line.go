package types

// LineCapacity is the size of the line buffer, terminator slot included.
const LineCapacity = 50

// Sentinel is the line that ends an interactive session.
const Sentinel = "stop"

// Line is a fixed-capacity input buffer holding at most LineCapacity-1 bytes
type Line struct {
	buf [LineCapacity]byte
	n   int
}

// NewLine returns a Line loaded with s
func NewLine(s string) *Line {
	l := &Line{}
	l.Set(s)
	return l
}

// Set replaces the content of the line, truncating s at LineCapacity-1 bytes.
// It reports whether s had to be truncated.
func (l *Line) Set(s string) bool {
	l.n = copy(l.buf[:LineCapacity-1], s)
	return l.n < len(s)
}

// Bytes returns the live content of the line. Writes through the returned
// slice modify the line.
func (l *Line) Bytes() []byte {
	return l.buf[:l.n]
}

func (l *Line) String() string {
	return string(l.buf[:l.n])
}

func (l *Line) Len() int {
	return l.n
}

// IsSentinel reports whether the line is exactly the stop word
func (l *Line) IsSentinel() bool {
	return string(l.buf[:l.n]) == Sentinel
}

// Pair is the character substitution requested for one iteration
type Pair struct {
	From byte
	To   byte
}
