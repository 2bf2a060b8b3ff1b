package ipprofile

// ProfileID is this profile's RFC 3843 IP-only profile identifier, as
// negotiated during ROHC channel setup and reported by
// [ProfileHooks.ProfileID].
const ProfileID = 0x0004

// MsnMaxBits is the full width of the master sequence number this
// profile tracks; DynamicIpParser always transmits all of them
// uncompressed, and SnWindow is sized to match.
const MsnMaxBits = 16

// snLsbWidth is the LSB window width [NewContext] allocates its
// [SnLsbWindow] with. The IP-only profile never uses a narrower window:
// unlike profiles carrying RTP timestamps, it has no secondary field
// whose window width varies by packet type.
const snLsbWidth = MsnMaxBits

// Config holds the IP-only profile's caller-tunable behavior.
type Config struct {
	// StrictDecompressor makes every degradable diagnostic
	// (ErrMalformedReservedFlag, ErrMalformedMode, ErrIpIdAlreadySet)
	// fatal instead of a logged warning. Default (zero value) is
	// lenient, matching typical ROHC decompressor deployments that
	// favor resynchronization over hard failure.
	StrictDecompressor bool
}
