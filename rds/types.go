package rds

// LexiconType tags the payload stored at a graph node.
//
// The numeric values are part of the JSON report format and match the
// original ADIOS lexicon table ordering.
type LexiconType int

const (
	// LexStart is the start-of-sequence marker, always node 0.
	LexStart LexiconType = iota

	// LexEnd is the end-of-sequence marker, always node 1.
	LexEnd

	// LexSymbol is a plain corpus token.
	LexSymbol

	// LexPattern is a significant pattern: an ordered sequence of node
	// indices collapsed into one node.
	LexPattern

	// LexClass is an equivalence class: an unordered set of mutually
	// interchangeable node indices.
	LexClass
)

// String returns a short tag for the lexicon type.
func (t LexiconType) String() string {
	switch t {
	case LexStart:
		return "start"
	case LexEnd:
		return "end"
	case LexSymbol:
		return "symbol"
	case LexPattern:
		return "pattern"
	case LexClass:
		return "class"
	default:
		return "unknown"
	}
}

// Connection records one place a node occurs: position Pos of search path
// Path. The same shape doubles as a parent back-reference, where Path is the
// composite node's index and Pos the slot within it.
type Connection struct {
	Path int
	Pos  int
}

// Node is one entry in the graph's node arena. The lexicon payload is stored
// inline as a tagged union: Symbol carries text, Pattern and Class carry
// member node indices, the start/end markers carry nothing.
type Node struct {
	Type LexiconType

	sym   string
	units []int

	connections []Connection
	parents     []Connection
}

func newStartNode() Node { return Node{Type: LexStart} }

func newEndNode() Node { return Node{Type: LexEnd} }

func newSymbolNode(text string) Node {
	return Node{Type: LexSymbol, sym: text}
}

func newPatternNode(sp SignificantPattern) Node {
	return Node{Type: LexPattern, units: sp}
}

func newClassNode(ec EquivalenceClass) Node {
	return Node{Type: LexClass, units: ec}
}

// Symbol returns the token text for a LexSymbol node ("" otherwise).
func (n *Node) Symbol() string { return n.sym }

// Units returns the member node indices of a composite node. The slice is a
// read-only view: ordered for patterns, unordered for classes.
func (n *Node) Units() []int { return n.units }

// Pattern returns the node's payload as a significant pattern.
func (n *Node) Pattern() SignificantPattern { return SignificantPattern(n.units) }

// Class returns the node's payload as an equivalence class.
func (n *Node) Class() EquivalenceClass { return EquivalenceClass(n.units) }

// Connections returns every (path, position) where this node currently
// appears. Rebuilt from scratch after every graph mutation.
func (n *Node) Connections() []Connection { return n.connections }

// Parents returns the (node, slot) pairs of composite nodes referencing this
// node as a member.
func (n *Node) Parents() []Connection { return n.parents }

// clone returns a deep copy of the node.
func (n *Node) clone() Node {
	return Node{
		Type:        n.Type,
		sym:         n.sym,
		units:       append([]int(nil), n.units...),
		connections: append([]Connection(nil), n.connections...),
		parents:     append([]Connection(nil), n.parents...),
	}
}

// Params holds the ADIOS algorithm configuration.
//
// Eta is the descent threshold marking candidate pattern boundaries; Alpha
// the significance level both boundary p-values must beat; ContextSize the
// window used for slot generalization (values below 3 disable generalization
// entirely); OverlapThreshold the minimum fractional overlap required to
// reuse an existing equivalence class during bootstrapping.
type Params struct {
	Eta              float64
	Alpha            float64
	ContextSize      int
	OverlapThreshold float64
}

// DefaultParams returns the parameter set commonly used for ADIOS runs.
func DefaultParams() Params {
	return Params{Eta: 0.9, Alpha: 0.01, ContextSize: 5, OverlapThreshold: 0.65}
}

// Validate reports the first violated parameter constraint, if any.
func (p Params) Validate() error {
	if p.Eta < 0 || p.Eta > 1 {
		return ErrBadEta
	}
	if p.Alpha < 0 || p.Alpha > 1 {
		return ErrBadAlpha
	}
	if p.ContextSize < 1 {
		return ErrBadContextSize
	}
	if p.OverlapThreshold < 0 || p.OverlapThreshold > 1 {
		return ErrBadOverlap
	}

	return nil
}

// Range is an inclusive [Start, End] span of positions within a search path.
type Range struct {
	Start int
	End   int
}

// Len returns the number of positions covered by the range.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Significance pairs the left and right boundary p-values of a candidate
// pattern. Values above 1.0 are sentinels meaning "no valid boundary".
type Significance struct {
	Left  float64
	Right float64
}

// max returns the weaker (larger) of the two p-values.
func (s Significance) max() float64 {
	if s.Left > s.Right {
		return s.Left
	}
	return s.Right
}

// isSignificant reports whether both boundary p-values beat alpha.
func (s Significance) isSignificant(alpha float64) bool {
	return s.Left < alpha && s.Right < alpha
}

// less orders significances by their weaker p-value, most significant first.
func (s Significance) less(o Significance) bool {
	return s.max() < o.max()
}
