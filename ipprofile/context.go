package ipprofile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/qmuntal/stateless"

	rohclog "github.com/rohcware/rohc-ip/log"
)

// ContextState is the decompressor context's RFC 3095 establishment
// state. spec.md treats the state machine driving it as part of the
// out-of-scope generic framework; this profile surfaces it because
// PacketTypeDetector's output is only usable once the caller knows
// whether a context is established enough to accept it.
//
// This package has no static-chain parser of its own (spec.md scopes
// it, like the rest of the generic framework, out of this profile): an
// IR packet is the only input that establishes a context, and it
// carries both chains at once, so a context here only ever exists as
// either completely unestablished or fully established. There is no
// third, partially-established state to model.
type ContextState int

const (
	// NoContext: nothing decoded yet, only an IR packet is acceptable.
	NoContext ContextState = iota
	// FullContext: static and dynamic chains known; UO-0/UO-1/UOR-2
	// packets are acceptable in addition to IR/IR-DYN.
	FullContext
)

func (s ContextState) String() string {
	switch s {
	case NoContext:
		return "NoContext"
	case FullContext:
		return "FullContext"
	default:
		return fmt.Sprintf("ContextState(%d)", int(s))
	}
}

const (
	triggerRecvIR      = "recv_ir"
	triggerRecvIRDyn   = "recv_ir_dyn"
	triggerRecvCompact = "recv_compact" // UO-0 / UO-1 / UOR-2
)

// IPHeaderState is the persistent per-IP-header state the generic
// RFC 3095 framework maintains across packets: is this header's IP-ID
// random (transmitted uncompressed, never delta-decoded), and what was
// the last decoded value. Ext3Parser reads RND and IsIPv4 to pick the
// IP-ID target in its deferred step 9.
type IPHeaderState struct {
	IsIPv4   bool
	RND      bool
	LastIpId uint16
}

// SnLsbWindow is the out-of-scope generic collaborator that resolves
// LSB-encoded SN fragments against a sliding window of width bits. The
// IP-only profile only ever constructs one with Width 16
// (spec.md §4.5); it never calls into the resolution logic itself,
// which belongs to the generic framework's decode_bits step.
type SnLsbWindow interface {
	Width() int
}

// lsbWindow is the minimal persistent holder backing [SnLsbWindow]; the
// actual LSB decode algorithm is an external collaborator and is not
// reimplemented here.
type lsbWindow struct {
	width int
}

func (w *lsbWindow) Width() int { return w.width }

// Context is the persistent, per-CID decompressor context for the
// IP-only profile (spec.md §3). It holds the generic RFC 3095 state
// this profile depends on (the SN LSB window, per-header IP state, and
// the establishment FSM) plus the two parse callbacks this profile
// installs into the framework. Profile-private state is empty for
// IP-only, so Context has no field for it.
type Context struct {
	CID uint16

	Strict bool
	Log    *slog.Logger

	SnWindow SnLsbWindow

	MultipleIp bool
	InnerIp    IPHeaderState
	OuterIp    IPHeaderState

	// FlagsFieldsParser is the generic RFC 3095 header-flags-fields
	// collaborator Ext3Parser calls into for inner/outer field blocks
	// (spec.md §4.3 steps 6 and 8). It is wired by NewProfileHooks, not
	// by NewContext directly, since the concrete parser belongs to
	// whatever generic framework the caller is embedding this profile in.
	FlagsFieldsParser IpFlagsFieldsParser

	// ParseDynNextHdr and ParseExt3 are wired at Create to this
	// profile's DynamicIpParser and Ext3Parser, per spec.md §4.5.
	ParseDynNextHdr DynNextHdrParser
	ParseExt3       Ext3ParserFunc

	fsm   *stateless.StateMachine
	state ContextState
}

// DynNextHdrParser parses the profile's dynamic next-header chain.
type DynNextHdrParser func(data []byte, bits *ExtractedBits) (int, error)

// Ext3ParserFunc parses a UOR-2 extension 3.
type Ext3ParserFunc func(data []byte, bits *ExtractedBits, ctx *Context) (int, error)

// State returns the context's current establishment state.
func (c *Context) State() ContextState { return c.state }

// AcceptsPacketType reports whether a packet of type pt may be parsed
// given the context's current establishment state.
func (c *Context) AcceptsPacketType(pt PacketType) bool {
	switch c.state {
	case FullContext:
		return pt == IR || pt == IRDyn || pt == UO0 || pt == UO1 || pt == UOR2
	default: // NoContext
		return pt == IR
	}
}

// AdvanceState fires the establishment-state transition for a
// successfully parsed packet of type pt. It is a no-op (and returns an
// error) if pt does not trigger a transition from the current state;
// callers only invoke it after a successful parse of an accepted type.
func (c *Context) AdvanceState(ctx context.Context, pt PacketType) error {
	var trigger string
	switch pt {
	case IR:
		trigger = triggerRecvIR
	case IRDyn:
		trigger = triggerRecvIRDyn
	case UO0, UO1, UOR2:
		trigger = triggerRecvCompact
	default:
		return nil
	}
	return c.fsm.FireCtx(ctx, trigger) //nolint:wrapcheck
}

func newContextFSM(c *Context) *stateless.StateMachine {
	onEntry := func(state ContextState) func(context.Context, ...any) error {
		return func(context.Context, ...any) error {
			c.state = state
			return nil
		}
	}

	fsm := stateless.NewStateMachine(NoContext)

	fsm.Configure(NoContext).
		OnEntry(onEntry(NoContext)).
		Permit(triggerRecvIR, FullContext)

	fsm.Configure(FullContext).
		OnEntry(onEntry(FullContext)).
		PermitReentry(triggerRecvIR).
		PermitReentry(triggerRecvIRDyn).
		InternalTransition(triggerRecvCompact, func(context.Context, ...any) error { return nil })

	return fsm
}

// NewContext creates a persistent IP-only profile context (spec.md
// §4.5's Create). It allocates the SN LSB window at the fixed 16-bit
// width mandated for this profile and wires the two parse callbacks.
func NewContext(cid uint16, cfg Config, logger *slog.Logger) *Context {
	if logger == nil {
		logger = rohclog.Noop()
	}
	c := &Context{
		CID:      cid,
		Strict:   cfg.StrictDecompressor,
		Log:      logger,
		SnWindow: &lsbWindow{width: snLsbWidth},
		state:    NoContext,
	}
	c.fsm = newContextFSM(c)
	c.ParseDynNextHdr = DynamicIpParser
	c.ParseExt3 = Ext3Parser
	return c
}

// FreeContext releases a context. The IP-only profile holds no
// resources needing explicit teardown (no file descriptors, no
// goroutines); this exists for parity with spec.md §4.5's Destroy and
// as the hook the framework calls on eviction.
func FreeContext(*Context) {}
