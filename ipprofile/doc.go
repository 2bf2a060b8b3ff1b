// Package ipprofile implements the decompression core of the ROHC
// IP-only profile (RFC 3843, profile ID 0x0004), layered over the
// generic RFC 3095 decompression framework.
//
// The package identifies a compressed packet's format from its leading
// byte ([DetectPacketType]), parses the IP-only dynamic chain
// ([DynamicIpParser]) and UOR-2 extension 3 ([Ext3Parser]), and exposes
// a [ProfileHooks] registration table that plugs these components into
// the generic RFC 3095 framework.
//
// Everything the generic framework owns — LSB window resolution, CID
// demultiplexing, CRC verification and repair, the feedback channel,
// and the parse/decode/build/update pipeline itself — is out of scope
// here and is represented only by narrow collaborator interfaces
// ([GenericEngine], [SnLsbWindow], [IpFlagsFieldsParser]); of these,
// this profile calls into [IpFlagsFieldsParser] only.
package ipprofile

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination mocks/mocks.go -package mocks github.com/rohcware/rohc-ip/ipprofile IpFlagsFieldsParser
