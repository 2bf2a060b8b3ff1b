package ipprofile

import "log/slog"

// ProfileHooks is the registration table spec.md §4.5 requires an
// IP-only profile instance to hand to the generic RFC 3095 framework:
// a profile identifier plus the callbacks the framework invokes on it —
// context lifecycle (Create/Destroy) and the two parse routines this
// profile contributes on top of the generic pipeline.
type ProfileHooks struct {
	ProfileID uint16

	NewContext  func(cid uint16) *Context
	FreeContext func(*Context)

	ParseDynNextHdr DynNextHdrParser
	ParseExt3       Ext3ParserFunc
}

// NewProfileHooks builds the registration table for one profile
// instance. flagsParser is the generic header-flags-fields collaborator
// every Context this table creates will route Ext3Parser's field-block
// steps through (spec.md §4.3 steps 6/8); [iphdr.Parser] is the concrete
// stand-in to pass when no richer framework-supplied parser exists yet.
// logger may be nil.
func NewProfileHooks(flagsParser IpFlagsFieldsParser, cfg Config, logger *slog.Logger) *ProfileHooks {
	newCtx := func(cid uint16) *Context {
		ctx := NewContext(cid, cfg, logger)
		ctx.FlagsFieldsParser = flagsParser
		return ctx
	}
	return &ProfileHooks{
		ProfileID:       ProfileID,
		NewContext:      newCtx,
		FreeContext:     FreeContext,
		ParseDynNextHdr: DynamicIpParser,
		ParseExt3:       Ext3Parser,
	}
}
