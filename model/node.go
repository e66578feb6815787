package model

// Node is a point in space with six degrees of freedom: Dx,Dy,Dz,Rx,Ry,Rz.
//
// Identity is by pointer, not by name or coordinates: every map keyed by a
// Node in this package and in package fem uses the *Node value itself as the
// key, so two nodes sharing the same name or position remain distinct.
type Node struct {
	Name string
	X, Y, Z float64
}

// NewNode creates a node at the given position.
func NewNode(name string, x, y, z float64) *Node {
	return &Node{Name: name, X: x, Y: y, Z: z}
}

// Position returns the node's coordinates as a 3-vector.
func (n *Node) Position() [3]float64 {
	return [3]float64{n.X, n.Y, n.Z}
}
