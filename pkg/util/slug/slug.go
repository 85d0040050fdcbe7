// Package slug turns numeric notification ids into short opaque URL tokens
// and back.
package slug

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultOffset is added to every id before encoding.
const DefaultOffset int64 = 110909

var ErrBadSlug = errors.New("slug: malformed slug")

// Codec encodes ids as base-36 strings of id+offset.
type Codec struct {
	offset int64
}

func New(offset int64) Codec {
	return Codec{offset: offset}
}

func (c Codec) Encode(id int64) string {
	return strconv.FormatInt(id+c.offset, 36)
}

// Decode accepts the strings Encode produces for positive ids, in either
// letter case.
func (c Codec) Decode(s string) (int64, error) {
	if s == "" || len(s) > 13 {
		return 0, ErrBadSlug
	}
	s = strings.ToLower(s)
	v, err := strconv.ParseInt(s, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadSlug, err)
	}
	if strconv.FormatInt(v, 36) != s {
		return 0, ErrBadSlug
	}
	id := v - c.offset
	if id <= 0 {
		return 0, ErrBadSlug
	}
	return id, nil
}
