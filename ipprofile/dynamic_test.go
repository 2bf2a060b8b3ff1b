package ipprofile

import (
	"errors"
	"testing"
)

// S3 — Dynamic IP SN.
func TestDynamicIpParser(t *testing.T) {
	var bits ExtractedBits

	n, err := DynamicIpParser([]byte{0x12, 0x34}, &bits)
	if err != nil {
		t.Fatalf("DynamicIpParser: %v", err)
	}
	if n != 2 {
		t.Fatalf("consumed = %d, want 2", n)
	}
	if bits.Sn != 0x1234 {
		t.Fatalf("Sn = %#x, want 0x1234", bits.Sn)
	}
	if bits.SnNr != 16 {
		t.Fatalf("SnNr = %d, want 16", bits.SnNr)
	}
	if bits.IsSnEnc {
		t.Fatal("IsSnEnc = true, want false")
	}
}

func TestDynamicIpParser_TooShort(t *testing.T) {
	var bits ExtractedBits
	if _, err := DynamicIpParser([]byte{0x12}, &bits); !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
}

func TestDynamicIpParser_TrailingBytesIgnored(t *testing.T) {
	var bits ExtractedBits
	n, err := DynamicIpParser([]byte{0xAB, 0xCD, 0xEF}, &bits)
	if err != nil {
		t.Fatalf("DynamicIpParser: %v", err)
	}
	if n != 2 {
		t.Fatalf("consumed = %d, want 2", n)
	}
	if bits.Sn != 0xABCD {
		t.Fatalf("Sn = %#x, want 0xABCD", bits.Sn)
	}
}
