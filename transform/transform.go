package transform

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrBadImage is returned by New when an image value is outside the
// domain {0, …, n−1}.
var ErrBadImage = errors.New("transform: image value out of range")

// Transf is a total transformation of {0, …, n−1}, stored as its image
// word. The zero value is the empty transformation of degree 0 and is
// not useful; construct with New, MustNew or Identity.
type Transf struct {
	img []uint8
}

// New returns the transformation with the given image word. Every value
// must lie in {0, …, len(images)−1}.
func New(images ...uint8) (*Transf, error) {
	n := len(images)
	for i, v := range images {
		if int(v) >= n {
			return nil, fmt.Errorf("%w: images[%d] = %d, degree %d", ErrBadImage, i, v, n)
		}
	}
	img := make([]uint8, n)
	copy(img, images)

	return &Transf{img: img}, nil
}

// MustNew is New panicking on a malformed image word. Intended for
// literals in tests and examples.
func MustNew(images ...uint8) *Transf {
	t, err := New(images...)
	if err != nil {
		panic(err)
	}

	return t
}

// Identity returns the identity transformation of degree n.
func Identity(n int) *Transf {
	img := make([]uint8, n)
	for i := range img {
		img[i] = uint8(i)
	}

	return &Transf{img: img}
}

// Degree returns the size of the domain.
func (t *Transf) Degree() int { return len(t.img) }

// At returns the image of point i.
func (t *Transf) At(i int) uint8 { return t.img[i] }

// Image returns a copy of the image word.
func (t *Transf) Image() []uint8 {
	out := make([]uint8, len(t.img))
	copy(out, t.img)

	return out
}

// Rank returns the number of distinct image points.
func (t *Transf) Rank() int {
	var seen [256]bool
	rank := 0
	for _, v := range t.img {
		if !seen[v] {
			seen[v] = true
			rank++
		}
	}

	return rank
}

// Equal reports whether t and u have identical image words.
func (t *Transf) Equal(u *Transf) bool { return bytes.Equal(t.img, u.img) }

// Clone returns an independent copy of t.
func (t *Transf) Clone() *Transf {
	img := make([]uint8, len(t.img))
	copy(img, t.img)

	return &Transf{img: img}
}

// String renders the image word, e.g. "T[1 0 2]".
func (t *Transf) String() string {
	var b strings.Builder
	b.WriteString("T[")
	for i, v := range t.img {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')

	return b.String()
}
