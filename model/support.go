package model

// SupportKind tags whether a restrained DOF is rigid or an elastic spring.
type SupportKind int

const (
	// Free means the DOF is unrestrained (not present in a Support entry).
	Free SupportKind = iota
	// Rigid means the DOF is fully restrained.
	Rigid
	// Spring means the DOF is restrained by a linear spring of a given stiffness.
	Spring
)

// SupportEntry describes the restraint on a single DOF.
type SupportEntry struct {
	Kind     SupportKind
	Stiffness float64 // only meaningful when Kind == Spring
}

// Support records, per restrained node, the restraint state of its six DOFs
// in order Dx,Dy,Dz,Rx,Ry,Rz.
type Support struct {
	byNode map[*Node][6]SupportEntry
}

// NewSupport creates an empty support set.
func NewSupport() *Support {
	return &Support{byNode: make(map[*Node][6]SupportEntry)}
}

// Add restrains the six DOFs of node. Each of dx,dy,dz,rx,ry,rz is either a
// bool (true = rigid, false = free) or a float64 spring stiffness. A spring
// value of exactly zero is rejected: it is ambiguous between "free" and "a
// real zero-stiffness spring".
func (s *Support) Add(node *Node, dx, dy, dz, rx, ry, rz interface{}) error {
	var entries [6]SupportEntry
	vals := [6]interface{}{dx, dy, dz, rx, ry, rz}
	for i, v := range vals {
		switch t := v.(type) {
		case nil:
			entries[i] = SupportEntry{Kind: Free}
		case bool:
			if t {
				entries[i] = SupportEntry{Kind: Rigid}
			} else {
				entries[i] = SupportEntry{Kind: Free}
			}
		case float64:
			if t == 0 {
				return wrapErr(ErrInvalidSupport, "node %q: a spring stiffness of 0 is ambiguous; use false for a free DOF", node.Name)
			}
			entries[i] = SupportEntry{Kind: Spring, Stiffness: t}
		default:
			return wrapErr(ErrInvalidSupport, "node %q: support value must be bool or float64", node.Name)
		}
	}
	s.byNode[node] = entries
	return nil
}

// AddFixed restrains all six DOFs of node.
func (s *Support) AddFixed(node *Node) error {
	return s.Add(node, true, true, true, true, true, true)
}

// AddPinned restrains the three translations of node and leaves rotations free.
func (s *Support) AddPinned(node *Node) error {
	return s.Add(node, true, true, true, false, false, false)
}

// Entries returns the restraint state of node's six DOFs and whether node
// is supported at all.
func (s *Support) Entries(node *Node) ([6]SupportEntry, bool) {
	e, ok := s.byNode[node]
	return e, ok
}

// Nodes returns every supported node, in no particular order.
func (s *Support) Nodes() []*Node {
	nodes := make([]*Node, 0, len(s.byNode))
	for n := range s.byNode {
		nodes = append(nodes, n)
	}
	return nodes
}
