package blake2b

import (
	"bytes"
	"testing"
)

func fourMessages() [4][]byte {
	var msgs [4][]byte
	for i := range msgs {
		msgs[i] = bytes.Repeat([]byte{byte(0x10 + i)}, 3*BlockSize+i*17)
	}
	return msgs
}

func TestUpdate4MatchesFourIndependentUpdates(t *testing.T) {
	msgs := fourMessages()

	var want [4][OutBytes]byte
	for i, m := range msgs {
		want[i] = Sum512(m)
	}

	s0, s1, s2, s3 := New(), New(), New(), New()
	Update4(s0, s1, s2, s3, msgs[0], msgs[1], msgs[2], msgs[3])
	digests := Finalize4(s0, s1, s2, s3)

	for i, d := range digests {
		if !bytes.Equal(d.AsBytes(), want[i][:]) {
			t.Errorf("lane %d: Update4/Finalize4 = %x, want %x", i, d.AsBytes(), want[i])
		}
	}
}

func TestUpdate4WithUnevenLaneLengths(t *testing.T) {
	msgs := [4][]byte{
		bytes.Repeat([]byte{0x01}, 5*BlockSize+1),
		bytes.Repeat([]byte{0x02}, 1),
		bytes.Repeat([]byte{0x03}, BlockSize),
		bytes.Repeat([]byte{0x04}, 0),
	}

	var want [4][OutBytes]byte
	for i, m := range msgs {
		want[i] = Sum512(m)
	}

	s0, s1, s2, s3 := New(), New(), New(), New()
	Update4(s0, s1, s2, s3, msgs[0], msgs[1], msgs[2], msgs[3])
	digests := Finalize4(s0, s1, s2, s3)

	for i, d := range digests {
		if !bytes.Equal(d.AsBytes(), want[i][:]) {
			t.Errorf("lane %d: got %x, want %x", i, d.AsBytes(), want[i])
		}
	}
}

func TestUpdate4AcrossMultipleCalls(t *testing.T) {
	msgs := fourMessages()

	s0, s1, s2, s3 := New(), New(), New(), New()
	for _, split := range []int{17, 128, 200} {
		Update4(s0, s1, s2, s3,
			msgs[0][:split], msgs[1][:min(split, len(msgs[1]))],
			msgs[2][:min(split, len(msgs[2]))], msgs[3][:min(split, len(msgs[3]))])
		msgs[0] = msgs[0][split:]
		msgs[1] = msgs[1][min(split, len(msgs[1])):]
		msgs[2] = msgs[2][min(split, len(msgs[2])):]
		msgs[3] = msgs[3][min(split, len(msgs[3])):]
	}
	Update4(s0, s1, s2, s3, msgs[0], msgs[1], msgs[2], msgs[3])

	again := fourMessages()
	var want [4][OutBytes]byte
	for i, m := range again {
		want[i] = Sum512(m)
	}

	digests := Finalize4(s0, s1, s2, s3)
	for i, d := range digests {
		if !bytes.Equal(d.AsBytes(), want[i][:]) {
			t.Errorf("lane %d: got %x, want %x", i, d.AsBytes(), want[i])
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
