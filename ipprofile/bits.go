package ipprofile

import "fmt"

// Mode is the ROHC operating mode carried by extension 3's flags byte.
type Mode uint8

const (
	// ModeReserved is the reserved mode value (0); never a legal steady
	// state, only ever seen transiently in a malformed packet.
	ModeReserved Mode = 0
	// ModeUnidirectional is U-mode.
	ModeUnidirectional Mode = 1
	// ModeOptimistic is O-mode.
	ModeOptimistic Mode = 2
	// ModeReliable is R-mode.
	ModeReliable Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeReserved:
		return "Reserved"
	case ModeUnidirectional:
		return "U"
	case ModeOptimistic:
		return "O"
	case ModeReliable:
		return "R"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// IPFieldBits carries the generic per-IP-header field deltas populated
// by the (out-of-scope) generic header-flags-fields parser: TOS, TTL,
// protocol, addresses and the flags that govern them. Any field left at
// its zero value with its companion *Nr field at 0 was not present in
// the packet.
type IPFieldBits struct {
	TOS    uint8
	TOSNr  int
	TTL    uint8
	TTLNr  int
	Proto  uint8
	ProtoNr int

	DF  bool
	RND bool
	NBO bool
	SID bool

	// SrcAddr and DstAddr hold a raw IPv4 address when the generic
	// parser reports a full 4-byte address field; zero-valued / absent
	// otherwise. Their presence is tracked with the same *Nr convention
	// (0 or 32 bits).
	SrcAddr   [4]byte
	SrcAddrNr int
	DstAddr   [4]byte
	DstAddrNr int

	// Id is the per-header IP-ID; set either by the generic
	// flags-fields parser (static-IP-ID headers) or, for UOR-2 ext3,
	// deferred and assigned by [Ext3Parser] step 9.
	Id   uint16
	IdNr int
	// IsIdEnc reports whether Id was LSB-encoded (true) or carried
	// verbatim (false, e.g. a random IP-ID transmitted uncompressed).
	IsIdEnc bool
}

// ExtractedBits is the per-packet aggregate populated during parsing of
// one compressed packet. The generic framework's decode_bits step
// (out of scope here) resolves these raw bits against context state
// into final header values.
type ExtractedBits struct {
	// SN bits. SnNr counts the valid bits: a dynamic-chain parse sets
	// SnNr=16 with IsSnEnc=false (absolute value); an extension-3 with
	// S=1 appends 8 LSB-encoded bits and sets IsSnEnc=true (SnNr=8 when
	// no SN bits were present, otherwise the byte is shifted in below
	// the existing bits and SnNr grows by 8).
	Sn      uint32
	SnNr    int
	IsSnEnc bool

	// Mode bits, 0 or 2 valid bits (2 once extension 3's flags byte has
	// been read).
	Mode   Mode
	ModeNr int

	// MultipleIp is latched from context before extension-3 parsing:
	// does the flow carry two stacked IP headers?
	MultipleIp bool

	InnerIp IPFieldBits
	OuterIp IPFieldBits
}
