// Package iphdr provides a concrete stand-in for the generic RFC 3095
// "header-flags-fields" parser that ipprofile.Ext3Parser calls into for
// its inner- and outer-header field blocks (spec.md §4.3 steps 6 and 8,
// §4.4). That parser is an out-of-scope external collaborator owned by
// the generic decompression framework, not by the IP-only profile; this
// package exists only so Ext3Parser is exercisable end-to-end without a
// full framework present.
//
// The flags-byte layout follows RFC 3095 §5.7's IPv4 dynamic chain:
// three presence bits gate optional TOS/TTL/Protocol octets, four
// single-bit values (DF, RND, NBO, SID) are carried directly in the
// flags byte, and the low bit is reserved (must be 0). IP addresses
// themselves are not modeled here: in RFC 3095 they are static-chain
// state, never a per-packet extension-3 delta.
package iphdr

import (
	"braces.dev/errtrace"

	"github.com/rohcware/rohc-ip/internal/errorutil"
	"github.com/rohcware/rohc-ip/ipprofile"
)

const (
	flagTOS      = 1 << 7
	flagTTL      = 1 << 6
	flagDF       = 1 << 5
	flagPR       = 1 << 4
	flagRND      = 1 << 3
	flagNBO      = 1 << 2
	flagSID      = 1 << 1
	flagReserved = 1 << 0
)

// ErrTooShort is returned when fewer field octets remain than the flags
// byte promised.
const ErrTooShort errorutil.Error = "rohc/ip: iphdr: too short"

// Parser implements [ipprofile.IpFlagsFieldsParser].
type Parser struct{}

// Parse reads the optional field octets a flags byte promises from
// fields. flagsByte was consumed by the caller at a separately-tracked
// offset (spec.md §4.3 steps 3/4 snapshot the flags byte location
// before the fields region is known).
func (Parser) Parse(flagsByte byte, fields []byte) (ipprofile.ParsedFlagsFields, error) {
	var (
		out  ipprofile.IPFieldBits
		pos  int
		want int
	)

	if flagsByte&flagTOS != 0 {
		want++
	}
	if flagsByte&flagTTL != 0 {
		want++
	}
	if flagsByte&flagPR != 0 {
		want++
	}
	if len(fields) < want {
		return ipprofile.ParsedFlagsFields{}, errtrace.Wrap(errorutil.NewWrapperError(ErrTooShort, "ip flags/fields block"))
	}

	if flagsByte&flagTOS != 0 {
		out.TOS = fields[pos]
		out.TOSNr = 8
		pos++
	}
	if flagsByte&flagTTL != 0 {
		out.TTL = fields[pos]
		out.TTLNr = 8
		pos++
	}
	if flagsByte&flagPR != 0 {
		out.Proto = fields[pos]
		out.ProtoNr = 8
		pos++
	}

	out.DF = flagsByte&flagDF != 0
	out.RND = flagsByte&flagRND != 0
	out.NBO = flagsByte&flagNBO != 0
	out.SID = flagsByte&flagSID != 0

	return ipprofile.ParsedFlagsFields{
		Bits:     out,
		Reserved: flagsByte&flagReserved != 0,
		Consumed: pos,
	}, nil
}
