package ipprofile

import (
	"github.com/rohcware/rohc-ip/internal/errorutil"
)

// Error kinds from the taxonomy. Each is a sentinel: callers match with
// errors.Is, and every return site wraps one of these (possibly with
// added context) via [errorutil.NewWrapperError].
const (
	// ErrTooShort is returned when the remaining bytes are insufficient
	// for a mandatory sub-field. Always fatal, in strict mode or not.
	ErrTooShort errorutil.Error = "rohc/ip: too short"

	// ErrMalformedReservedFlag is returned when the reserved bit in the
	// inner-header flags byte is set. Fatal only in strict mode.
	ErrMalformedReservedFlag errorutil.Error = "rohc/ip: reserved flag set in inner header flags"

	// ErrMalformedMode is returned when extension 3's mode field is 0.
	// Fatal only in strict mode.
	ErrMalformedMode errorutil.Error = "rohc/ip: extension 3 mode field is reserved (0)"

	// ErrIpIdAlreadySet is returned when I=1 but the target header's
	// id_nr is already non-zero and its id is non-zero. Fatal only in
	// strict mode.
	ErrIpIdAlreadySet errorutil.Error = "rohc/ip: IP-ID already updated"

	// ErrNoIpIdTarget is returned when I=1 but no header is
	// IPv4-with-non-random-IP-ID. Always fatal.
	ErrNoIpIdTarget errorutil.Error = "rohc/ip: no header can receive the IP-ID"

	// ErrUnknownPacketType names the case where the leading byte matches
	// none of the five recognized patterns. [DetectPacketType] reports
	// that case as the [Unknown] packet type; no function in this
	// package returns this error.
	ErrUnknownPacketType errorutil.Error = "rohc/ip: unknown packet type"
)

// lenientErr reports a diagnostic for a kind that degrades to a warning
// in lenient mode. In strict mode it wraps sentinel with msg and
// returns a non-nil error; in lenient mode it logs the warning via
// warn and returns nil so parsing continues.
func lenientErr(strict bool, sentinel errorutil.Error, msg string, warn func(string)) error {
	if strict {
		return errorutil.NewWrapperError(sentinel, msg) //errtrace:skip
	}
	if warn != nil {
		warn(msg)
	}
	return nil
}
