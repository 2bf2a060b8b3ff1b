package iphdr_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rohcware/rohc-ip/ipprofile"
	"github.com/rohcware/rohc-ip/ipprofile/iphdr"
)

func TestParser_NoOptionalFields(t *testing.T) {
	got, err := iphdr.Parser{}.Parse(0x00, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := ipprofile.ParsedFlagsFields{Consumed: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_AllOptionalFieldsAndFlags(t *testing.T) {
	// TOS|TTL|DF|PR|RND|NBO|SID all set, reserved bit clear.
	flags := byte(0b11111110)
	got, err := iphdr.Parser{}.Parse(flags, []byte{0x10, 0x20, 0x30})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := ipprofile.ParsedFlagsFields{
		Bits: ipprofile.IPFieldBits{
			TOS: 0x10, TOSNr: 8,
			TTL: 0x20, TTLNr: 8,
			Proto: 0x30, ProtoNr: 8,
			DF: true, RND: true, NBO: true, SID: true,
		},
		Consumed: 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_ReservedBitSurfaced(t *testing.T) {
	got, err := iphdr.Parser{}.Parse(0x01, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.Reserved {
		t.Fatal("Reserved = false, want true")
	}
}

func TestParser_TooShort(t *testing.T) {
	// TOS flag set, but no field bytes supplied.
	if _, err := iphdr.Parser{}.Parse(0x80, nil); !errors.Is(err, iphdr.ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
}
