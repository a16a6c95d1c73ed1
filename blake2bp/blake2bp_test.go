package blake2bp

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

func TestParameterizedVector(t *testing.T) {
	want := mustHex(t, "8c54e888a8a01c63da6585c058fe54ea81df")

	s := NewParams().HashLength(18).Key([]byte("bar")).ToState()
	s.Update([]byte("foo"))
	got := s.Finalize()

	if !bytes.Equal(got.AsBytes(), want) {
		t.Errorf("keyed BLAKE2bp vector = %x, want %x", got.AsBytes(), want)
	}

}

func TestSumUnkeyedDefaultLength(t *testing.T) {
	digest := Sum([]byte("foo"), 64)
	if digest.Len() != 64 {
		t.Errorf("Sum with length 64 returned a %d-byte digest", digest.Len())
	}
}

func TestDefaultDigestIs64Bytes(t *testing.T) {
	s := New()
	s.Update([]byte("message"))
	h := s.Finalize()
	if h.Len() != 64 {
		t.Errorf("default BLAKE2bp digest length = %d, want 64", h.Len())
	}
}

func TestSplitUpdateMatchesOneShot(t *testing.T) {
	msg := make([]byte, 4*128*3+57)
	for i := range msg {
		msg[i] = byte(i * 13)
	}

	oneShot := New()
	oneShot.Update(msg)
	want := oneShot.Finalize()

	for _, split := range []int{0, 1, 127, 128, 129, 512, 513, 1000} {
		if split > len(msg) {
			continue
		}
		s := New()
		s.Update(msg[:split])
		s.Update(msg[split:])
		got := s.Finalize()
		if !bytes.Equal(got.AsBytes(), want.AsBytes()) {
			t.Errorf("split at %d: got %x, want %x", split, got.AsBytes(), want.AsBytes())
		}
	}
}

func TestOneByteAtATimeMatchesOneShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")

	oneShot := New()
	oneShot.Update(msg)
	want := oneShot.Finalize()

	s := New()
	for _, b := range msg {
		s.Update([]byte{b})
	}
	got := s.Finalize()

	if !bytes.Equal(got.AsBytes(), want.AsBytes()) {
		t.Errorf("one byte at a time = %x, want %x", got.AsBytes(), want.AsBytes())
	}
}

func TestFinalizeIsIdempotentAndNonDestructive(t *testing.T) {
	s := New()
	s.Update([]byte("part one"))

	first := s.Finalize()
	second := s.Finalize()
	if !bytes.Equal(first.AsBytes(), second.AsBytes()) {
		t.Fatalf("Finalize not idempotent: %x != %x", first.AsBytes(), second.AsBytes())
	}

	s.Update([]byte(" part two"))
	got := s.Finalize()

	full := New()
	full.Update([]byte("part one part two"))
	want := full.Finalize()

	if !bytes.Equal(got.AsBytes(), want.AsBytes()) {
		t.Errorf("Finalize after further Update = %x, want %x", got.AsBytes(), want.AsBytes())
	}
}

func TestWriterInterfaceMatchesUpdate(t *testing.T) {
	msg := bytes.Repeat([]byte{0x7a}, 1000)

	s1 := New()
	s1.Update(msg)
	want := s1.Finalize()

	s2 := New()
	n, err := s2.Write(msg)
	if err != nil || n != len(msg) {
		t.Fatalf("Write returned (%d, %v)", n, err)
	}
	got := s2.Sum(nil)

	if !bytes.Equal(got, want.AsBytes()) {
		t.Errorf("writer interface = %x, want %x", got, want.AsBytes())
	}
}

func TestResetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Reset did not panic")
		}
	}()
	New().Reset()
}

func TestParamsPanicsOnInvalidRanges(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"hash length zero", func() { NewParams().HashLength(0) }},
		{"hash length too long", func() { NewParams().HashLength(65) }},
		{"key too long", func() { NewParams().Key(make([]byte, 65)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", c.name)
				}
			}()
			c.fn()
		})
	}
}

func TestEmptyInput(t *testing.T) {
	s := New()
	s.Update(nil)
	h := s.Finalize()
	if h.Len() != 64 {
		t.Errorf("empty input digest length = %d, want 64", h.Len())
	}
}
