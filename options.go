package gnfa

import "fmt"

// Phase The stage a conversion has reached.
type Phase int

const (
	PhaseRaw        = Phase(iota) // parallel edges collapsed, nothing else done
	PhaseNormalized               // single accept state in place
	PhaseReducing                 // an interior state has just been eliminated
	PhaseTwoState                 // only the start and the accept state remain
	PhaseDone                     // the expression has been assembled
)

func (p Phase) String() string {
	switch p {
	case PhaseRaw:
		return "raw"
	case PhaseNormalized:
		return "normalized"
	case PhaseReducing:
		return "reducing"
	case PhaseTwoState:
		return "two-state"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Step Describes one observable step of a conversion. State is the
// identifier of the eliminated state during PhaseReducing and -1 otherwise.
type Step struct {
	Phase Phase
	State int
}

func (s Step) String() string {
	if s.Phase == PhaseReducing {
		return fmt.Sprintf("remove-state-%d", s.State)
	}
	return s.Phase.String()
}

// StepFunc Observes a conversion. The GNFA must not be modified.
type StepFunc func(g *GNFA, step Step)

type options struct {
	order       Order
	step        StepFunc
	trim        bool
	freshStart  bool
	freshAccept bool
}

type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		order: LowestID,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithOrder Choose the elimination order. The default is LowestID.
func WithOrder(order Order) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

// WithStepCallback Call fn after every phase change and every elimination.
func WithStepCallback(fn StepFunc) Option {
	return func(o *options) {
		o.step = fn
	}
}

// WithTrim Drop interior states that are unreachable from the start state or
// cannot reach the accept state before eliminating anything.
func WithTrim() Option {
	return func(o *options) {
		o.trim = true
	}
}

// WithFreshStart Introduce a new non-accepting start state, linked to the
// old one by an epsilon edge, whenever the old start state has an incoming
// edge.
func WithFreshStart() Option {
	return func(o *options) {
		o.freshStart = true
	}
}

// WithFreshAccept Introduce a new accept state even when the automaton has a
// single accept state, as long as that state has outgoing edges or is the
// start state. The assembled expression then never needs a back edge.
func WithFreshAccept() Option {
	return func(o *options) {
		o.freshAccept = true
	}
}
