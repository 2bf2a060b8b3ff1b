package ipprofile

import (
	"braces.dev/errtrace"

	"github.com/rohcware/rohc-ip/internal/errorutil"
)

const (
	ext3FlagS     = 1 << 5
	ext3FlagI     = 1 << 2
	ext3FlagIp    = 1 << 1
	ext3FlagIp2   = 1 << 0
	ext3ModeMask  = 0x3
	ext3ModeShift = 3
)

// Ext3Parser parses a UOR-2 extension 3 (spec.md §4.3): a flags byte,
// conditional inner/outer flags bytes, a conditional SN append,
// conditional inner/outer field blocks, a conditional 16-bit IP-ID, and
// a deferred assignment of that IP-ID to whichever header is eligible
// to receive it. It returns the number of bytes consumed.
//
// bits.MultipleIp must already be set (latched from context) before
// calling; Ext3Parser only reads it.
func Ext3Parser(data []byte, bits *ExtractedBits, ctx *Context) (int, error) {
	c := NewBitCursor(data)
	warn := warnFunc(ctx, "ext3")

	flagsByte, err := c.Byte()
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	s := flagsByte&ext3FlagS != 0
	mode := Mode((flagsByte >> ext3ModeShift) & ext3ModeMask)
	iFlag := flagsByte&ext3FlagI != 0
	ipFlag := flagsByte&ext3FlagIp != 0
	ip2Flag := flagsByte&ext3FlagIp2 != 0

	bits.Mode = mode
	bits.ModeNr = 2

	if mode == ModeReserved {
		if err := lenientErr(ctx.Strict, ErrMalformedMode, "extension 3 mode field is 0", warn); err != nil {
			return 0, errtrace.Wrap(err)
		}
	}

	if (ipFlag || ip2Flag) && ctx.FlagsFieldsParser == nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("ext3: ctx.FlagsFieldsParser not configured"))
	}

	// Step 2: the three single-byte conditional sub-fields (inner
	// flags, outer flags, SN append) must all fit before we read any
	// of them.
	need := 0
	if ipFlag {
		need++
	}
	if ip2Flag {
		need++
	}
	if s {
		need++
	}
	if !c.HasBytes(need) {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrTooShort, "extension 3 flag sub-fields"))
	}

	// Steps 3-4: snapshot the inner- and outer-flags bytes in wire order
	// (ip before ip2), consuming each conditionally.
	var stepThreeFlags, stepFourFlags byte
	if ipFlag {
		b, err := c.Byte()
		if err != nil {
			return 0, errtrace.Wrap(err)
		}
		stepThreeFlags = b
	}
	if ip2Flag {
		b, err := c.Byte()
		if err != nil {
			return 0, errtrace.Wrap(err)
		}
		stepFourFlags = b
	}

	// Step 5: optional 8-bit SN LSB append.
	if s {
		snByte, err := c.Byte()
		if err != nil {
			return 0, errtrace.Wrap(err)
		}
		if bits.SnNr == 0 {
			bits.Sn = uint32(snByte)
			bits.SnNr = 8
		} else {
			bits.Sn = bits.Sn<<8 | uint32(snByte)
			bits.SnNr += 8
		}
		bits.IsSnEnc = true
	}

	var innerParsedThisPkt, outerParsedThisPkt bool

	// Step 6: inner-header fields block, routed by multiple_ip.
	if ipFlag {
		parsed, err := InnerHdrFlagsFieldsParser(ctx, stepThreeFlags, c.Rest())
		if err != nil {
			return 0, errtrace.Wrap(err)
		}
		if err := c.Skip(parsed.Consumed); err != nil {
			return 0, errtrace.Wrap(err)
		}
		if bits.MultipleIp {
			bits.InnerIp = parsed.Bits
			innerParsedThisPkt = true
		} else {
			bits.OuterIp = parsed.Bits
			outerParsedThisPkt = true
		}
	}

	// Step 7: 16-bit IP-ID, read but not yet assigned to a header.
	var (
		iBits   uint16
		haveIID bool
	)
	if iFlag {
		v, err := c.Uint16()
		if err != nil {
			return 0, errtrace.Wrap(err)
		}
		iBits, haveIID = v, true
	}

	// Step 8: outer-header fields block, always routed to outer_ip.
	if ip2Flag {
		parsed, err := ctx.FlagsFieldsParser.Parse(stepFourFlags, c.Rest())
		if err != nil {
			return 0, errtrace.Wrap(err)
		}
		if err := c.Skip(parsed.Consumed); err != nil {
			return 0, errtrace.Wrap(err)
		}
		bits.OuterIp = parsed.Bits
		outerParsedThisPkt = true
	}

	// Step 9: deferred IP-ID assignment. Deferred because the outer
	// header's RND may have just changed in step 8; assigning earlier
	// risks routing the value using stale RND state.
	if iFlag && haveIID {
		if err := assignIpId(ctx, bits, iBits, innerParsedThisPkt, outerParsedThisPkt, warn); err != nil {
			return 0, errtrace.Wrap(err)
		}
	}

	return c.Pos(), nil
}

// assignIpId implements spec.md §4.3 step 9: pick the innermost eligible
// header (inner, if the flow is stacked and inner qualifies; otherwise
// outer) and assign I_bits to it.
func assignIpId(
	ctx *Context,
	bits *ExtractedBits,
	iBits uint16,
	innerParsedThisPkt, outerParsedThisPkt bool,
	warn func(string),
) error {
	innerEligible := isIPv4NonRndPkt(ctx.InnerIp, bits.InnerIp, innerParsedThisPkt)
	outerEligible := isIPv4NonRndPkt(ctx.OuterIp, bits.OuterIp, outerParsedThisPkt)

	var target *IPFieldBits
	switch {
	case bits.MultipleIp && innerEligible:
		target = &bits.InnerIp
	case outerEligible:
		target = &bits.OuterIp
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrNoIpIdTarget))
	}

	if target.IdNr > 0 && target.Id != 0 {
		if err := lenientErr(ctx.Strict, ErrIpIdAlreadySet, "IP-ID already updated", warn); err != nil {
			return errtrace.Wrap(err)
		}
	}

	target.Id = iBits
	target.IdNr = 16
	target.IsIdEnc = true
	return nil
}

// isIPv4NonRndPkt reports whether a header is eligible to receive a
// decoded IP-ID: it must be IPv4 (persistent, static per flow) and its
// RND flag must be clear. RND is taken from this packet's freshly
// parsed bits when that header's flags were parsed this packet, and
// from the persistent context otherwise — using the context's
// (possibly stale) RND when the flags byte was absent is correct,
// since nothing updated it.
func isIPv4NonRndPkt(state IPHeaderState, pktBits IPFieldBits, parsedThisPkt bool) bool {
	if !state.IsIPv4 {
		return false
	}
	if parsedThisPkt {
		return !pktBits.RND
	}
	return !state.RND
}

func warnFunc(ctx *Context, component string) func(string) {
	return func(msg string) {
		if ctx == nil || ctx.Log == nil {
			return
		}
		ctx.Log.Warn(msg, "component", component, "cid", ctx.CID, "strict", ctx.Strict)
	}
}
