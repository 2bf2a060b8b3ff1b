package ipprofile

import "braces.dev/errtrace"

// InnerHdrFlagsFieldsParser wraps ctx.FlagsFieldsParser with the
// inner-header-specific check spec.md §4.4 requires: the flags byte's
// reserved bit must be clear. The generic parser itself is silent on
// what a set reserved bit means, since reserved-bit policy is a
// per-profile decision, not a generic-framework one.
func InnerHdrFlagsFieldsParser(ctx *Context, flagsByte byte, fields []byte) (ParsedFlagsFields, error) {
	parsed, err := ctx.FlagsFieldsParser.Parse(flagsByte, fields)
	if err != nil {
		return ParsedFlagsFields{}, errtrace.Wrap(err)
	}

	if parsed.Reserved {
		warn := warnFunc(ctx, "innerflags")
		if err := lenientErr(ctx.Strict, ErrMalformedReservedFlag, "inner header flags reserved bit set", warn); err != nil {
			return ParsedFlagsFields{}, errtrace.Wrap(err)
		}
	}

	return parsed, nil
}
