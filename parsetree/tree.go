package parsetree

import (
	"fmt"
	"strings"
)

// Link addresses a node's position under its parent: Parent is the parent's
// node index, Child the slot among that parent's children.
type Link struct {
	Parent int
	Child  int
}

// Node is one entry in a Tree's arena. The zero value is a childless node
// parented at the root's first slot.
type Node[T any] struct {
	value    T
	parent   Link
	children []int
}

// Value returns the value stored at the node.
func (n *Node[T]) Value() T { return n.value }

// Parent returns the node's parent link.
func (n *Node[T]) Parent() Link { return n.parent }

// Children returns the indices of the node's children, in order.
func (n *Node[T]) Children() []int { return n.children }

// rewireChildren replaces children [start..finish] with newNode and returns
// the subsumed child indices.
func (n *Node[T]) rewireChildren(start, finish, newNode int) []int {
	subsumed := append([]int(nil), n.children[start:finish+1]...)
	tail := append([]int{newNode}, n.children[finish+1:]...)
	n.children = append(n.children[:start], tail...)
	return subsumed
}

// Tree is a parse forest over values of type T. Node 0 is always the root.
type Tree[T any] struct {
	nodes []Node[T]
}

// New returns a tree holding only the root node.
func New[T any]() Tree[T] {
	return Tree[T]{nodes: []Node[T]{{}}}
}

// FromValues builds a flat tree: every value becomes a direct child of the
// root, in order.
func FromValues[T any](values []T) Tree[T] {
	t := New[T]()
	for i, v := range values {
		t.nodes[0].children = append(t.nodes[0].children, len(t.nodes))
		t.nodes = append(t.nodes, Node[T]{value: v, parent: Link{Parent: 0, Child: i}})
	}
	return t
}

// Nodes exposes the arena; index 0 is the root.
func (t *Tree[T]) Nodes() []Node[T] { return t.nodes }

// Len returns the number of nodes, root included.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// Rewire replaces root children [start..finish] with a new internal node
// holding value, reparenting the replaced nodes under it. Both bounds are
// inclusive and must address current root children.
func (t *Tree[T]) Rewire(start, finish int, value T) {
	t.nodes = append(t.nodes, Node[T]{value: value})
	newIdx := len(t.nodes) - 1
	t.nodes[newIdx].children = t.nodes[0].rewireChildren(start, finish, newIdx)
	for i, c := range t.nodes[newIdx].children {
		t.nodes[c].parent = Link{Parent: newIdx, Child: i}
	}
}

// Attach grafts branch below the node at attachPoint: branch's root children
// become trailing children of the attach point, with all branch indices
// shifted into this tree's arena.
func (t *Tree[T]) Attach(attachPoint int, branch Tree[T]) {
	if attachPoint >= len(t.nodes) {
		panic(fmt.Sprintf("parsetree: attach point %d out of range (%d nodes)", attachPoint, len(t.nodes)))
	}

	offset := len(t.nodes)
	for i := 1; i < len(branch.nodes); i++ {
		n := branch.nodes[i]
		n.children = append([]int(nil), n.children...)
		n.parent.Parent += offset
		for j := range n.children {
			n.children[j] += offset - 1
		}
		t.nodes = append(t.nodes, n)
	}

	if len(branch.nodes) > 1 {
		t.nodes[offset].parent.Parent = attachPoint
	}
	for _, c := range branch.nodes[0].children {
		t.nodes[attachPoint].children = append(t.nodes[attachPoint].children, c+offset-1)
	}
}

// Clone returns a deep copy of the tree.
func (t *Tree[T]) Clone() Tree[T] {
	nodes := make([]Node[T], len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = Node[T]{
			value:    n.value,
			parent:   n.parent,
			children: append([]int(nil), n.children...),
		}
	}
	return Tree[T]{nodes: nodes}
}

// String renders the tree as an indented outline rooted at node 0.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.render(&b, 0, 0)
	return b.String()
}

func (t *Tree[T]) render(b *strings.Builder, node, depth int) {
	b.WriteString(strings.Repeat("\t", depth))
	fmt.Fprintf(b, "%d ---> %v\n", node, t.nodes[node].value)
	for _, c := range t.nodes[node].children {
		t.render(b, c, depth+1)
	}
}
