package ipprofile

// ParsedFlagsFields is the result of one generic header-flags-fields
// parse (spec.md §4.3 steps 6/8, §4.4): the populated field bits, the
// flags byte's reserved bit verbatim, and the number of field-region
// bytes consumed (excluding the flags byte itself).
type ParsedFlagsFields struct {
	Bits     IPFieldBits
	Reserved bool
	Consumed int
}

// IpFlagsFieldsParser is the out-of-scope generic RFC 3095 collaborator
// that decodes one IP header's flags-and-fields block. Ext3Parser calls
// it up to twice per packet (inner when ip=1, then outer when ip2=1);
// InnerHdrFlagsFieldsParser
// wraps it with the inner-header reserved-bit check spec.md §4.4
// requires. [github.com/rohcware/rohc-ip/ipprofile/iphdr.Parser] is the
// concrete instance used when no framework supplies its own.
type IpFlagsFieldsParser interface {
	Parse(flagsByte byte, fields []byte) (ParsedFlagsFields, error)
}

// DecodedHeaders is the generic framework's output of resolving
// [ExtractedBits] against context state into concrete header values.
// Its shape is owned by the generic RFC 3095 framework (spec.md §1); it
// is declared here only so [GenericEngine]'s signature can be stated.
type DecodedHeaders struct {
	InnerIp IPFieldBits
	OuterIp IPFieldBits
	Sn      uint32
}

// GenericEngine is the RFC 3095 decompression pipeline this profile is
// layered over: parse_pkt, decode_bits, build_hdrs, update_ctxt,
// attempt_repair and get_sn from spec.md §4.5's registration table, all
// of which spec.md §1 places out of scope for this profile. The interface
// only states the shape of these collaborators: ProfileHooks holds no
// GenericEngine, and the IP-only profile neither implements nor calls
// these methods.
type GenericEngine interface {
	ParsePkt(ctx *Context, pkt []byte) (ExtractedBits, error)
	DecodeBits(ctx *Context, bits ExtractedBits) (DecodedHeaders, error)
	BuildHdrs(ctx *Context, dec DecodedHeaders) ([]byte, error)
	UpdateCtxt(ctx *Context, dec DecodedHeaders) error
	AttemptRepair(ctx *Context, bits ExtractedBits, parseErr error) (ExtractedBits, error)
	GetSN(ctx *Context) uint32
}
