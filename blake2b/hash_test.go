package blake2b

import "testing"

func TestHashToHexLowercase(t *testing.T) {
	digest := Sum512([]byte("abc"))
	var h Hash
	h.bytes = digest
	h.size = OutBytes

	hex := h.ToHex()
	for _, r := range hex {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("ToHex produced uppercase output: %s", hex)
		}
	}
	if len(hex) != 2*OutBytes {
		t.Errorf("ToHex length = %d, want %d", len(hex), 2*OutBytes)
	}
}

func TestHashStringMatchesToHex(t *testing.T) {
	digest := Sum512([]byte("xyz"))
	var h Hash
	h.bytes = digest
	h.size = OutBytes

	if h.String() != h.ToHex() {
		t.Errorf("String() = %q, ToHex() = %q", h.String(), h.ToHex())
	}
}

func TestHashLenMatchesAsBytes(t *testing.T) {
	s := NewParams().HashLength(20).ToState()
	s.Update([]byte("payload"))
	h := s.Finalize()
	if h.Len() != len(h.AsBytes()) {
		t.Errorf("Len() = %d, len(AsBytes()) = %d", h.Len(), len(h.AsBytes()))
	}
}
