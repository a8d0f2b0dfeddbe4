package message

import (
	"io"

	"httpcommon/internal/random"
)

const BoundaryLength = 20

// Boundary delimits multipart sections. The empty boundary means unset.
type Boundary string

const EmptyBoundary Boundary = ""

// NewBoundary draws a random boundary from crypto/rand.
func NewBoundary() (Boundary, error) {
	return newBoundary(random.New())
}

// NewBoundaryFrom draws a random boundary from r.
func NewBoundaryFrom(r io.Reader) (Boundary, error) {
	return newBoundary(random.NewFromReader(r))
}

func newBoundary(ran random.Random) (Boundary, error) {
	s, err := ran.String(BoundaryLength)
	if err != nil {
		return EmptyBoundary, err
	}
	return Boundary(s), nil
}

// FixedBoundary wraps a caller supplied boundary unchanged.
func FixedBoundary(s string) Boundary {
	return Boundary(s)
}

func (b Boundary) IsEmpty() bool {
	return b == EmptyBoundary
}

func (b Boundary) String() string {
	return string(b)
}
