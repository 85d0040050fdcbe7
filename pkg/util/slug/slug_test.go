package slug

import (
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	c := New(DefaultOffset)

	for _, id := range []int64{1, 2, 99, 110909, 1 << 40} {
		s := c.Encode(id)
		got, err := c.Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", s, err)
		}
		if got != id {
			t.Errorf("Decode(Encode(%d)) = %d", id, got)
		}
	}
}

func TestEncodeIsOpaque(t *testing.T) {
	c := New(DefaultOffset)

	// 1 + 110909 = 110910 = "2dku" in base 36
	if got := c.Encode(1); got != "2dku" {
		t.Errorf("Encode(1) = %q, want %q", got, "2dku")
	}
}

func TestDecodeIgnoresCase(t *testing.T) {
	c := New(DefaultOffset)

	for _, in := range []string{"2dku", "2DKU", "2dKu"} {
		got, err := c.Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", in, err)
		}
		if got != 1 {
			t.Errorf("Decode(%q) = %d, want 1", in, got)
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	c := New(DefaultOffset)

	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "not base36", in: "ab_c"},
		{name: "leading zero", in: "02dku"},
		{name: "plus sign", in: "+2dku"},
		{name: "negative", in: "-2dku"},
		{name: "below offset", in: "1"},
		{name: "exactly offset", in: c.Encode(0)},
		{name: "overflow", in: "zzzzzzzzzzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.in)
			if !errors.Is(err, ErrBadSlug) {
				t.Errorf("Decode(%q) error = %v, want ErrBadSlug", tt.in, err)
			}
		})
	}
}
