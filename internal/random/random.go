package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

// Alphabet maps 0-9 to '0'-'9', 10-35 to 'A'-'Z' and 36-61 to 'a'-'z'.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// bytes at or above this are rejected so every symbol is equally likely.
const maxUnbiased = 256 - 256%len(Alphabet)

type Random interface {
	String(length int) (string, error)
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

// NewFromReader draws from r instead of crypto/rand. Tests use it to get
// reproducible output.
func NewFromReader(r io.Reader) Random {
	return &random{reader: r}
}

// Symbol returns the alphabet character for index v. v must be in [0, 62).
func Symbol(v int) byte {
	return Alphabet[v]
}

func (ran *random) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		chunk := buf[:length-len(out)]
		if _, err := io.ReadFull(ran.reader, chunk); err != nil {
			return "", err
		}
		for _, b := range chunk {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, Symbol(int(b)%len(Alphabet)))
		}
	}

	return string(out), nil
}
