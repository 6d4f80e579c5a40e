// Package tree implements the arena-allocated parse tree the driver in
// internal/parse assembles during reductions.
//
// Unlike the teacher's pointer-linked ParseTree, Tree stores every node in a
// flat, append-only slice and refers to parent/child relationships by index.
// This follows spec section 4.9 directly ("arena of nodes ... nodes
// reference each other by index into a flat vector"): a reduction that
// creates a node and attaches children never allocates a pointer, and the
// finished tree is trivially copyable and comparable node-by-node.
package tree

import (
	"fmt"
	"strings"

	"github.com/franleplant/lr1/internal/symbol"
)

// NodeID indexes into a Tree's node arena. The zero value, 0, is never a
// valid node id for a non-empty tree's root reference before SetRoot is
// called; NoNode is used for "absent" where that distinction matters.
type NodeID int

// NoNode is the sentinel returned where no node exists, e.g. the root of an
// empty tree.
const NoNode NodeID = -1

// Node is one arena entry: the symbol it was built for, its parent (or
// NoNode for the root), and its children in attachment order.
type Node struct {
	Symbol   symbol.Symbol
	Parent   NodeID
	Children []NodeID
}

// Tree is the arena itself: a flat, append-only vector of nodes plus the id
// of the root. Nodes are appended in reduction order; no node is ever
// removed or reparented once attached.
type Tree struct {
	nodes []Node
	root  NodeID
}

// New returns an empty Tree with no nodes and no root.
func New() *Tree {
	return &Tree{root: NoNode}
}

// CreateNode appends a new, childless, parentless node for sym and returns
// its id.
func (t *Tree) CreateNode(sym symbol.Symbol) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Symbol: sym, Parent: NoNode})
	return id
}

// SetRoot marks id as the tree's root. Called once per reduction by the
// driver, since every reduction's new node is - until superseded by the next
// reduction - the top of the tree built so far; the final call before
// Accept leaves the true goal node as root.
func (t *Tree) SetRoot(id NodeID) {
	t.root = id
}

// Root returns the tree's root id, or NoNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// AttachChild appends child to parent's children list and sets child's
// parent to parent. Children accumulate in the order they are attached,
// which the driver guarantees is left-to-right in the production body (see
// the "Parse stack" invariant in internal/parse).
func (t *Tree) AttachChild(parent, child NodeID) {
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
	t.nodes[child].Parent = parent
}

// Node returns the node stored at id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Empty returns whether the tree has no root, i.e. SetRoot was never called
// (an empty token stream or a bare EOF token stream both leave the tree in
// this state). Nodes created without a SetRoot call do not make it
// non-empty.
func (t *Tree) Empty() bool {
	return t.root == NoNode
}

// String renders the tree as a depth-indented preorder dump rooted at
// t.Root(), one symbol per line. An empty tree renders as "<empty>".
func (t *Tree) String() string {
	if t.Empty() {
		return "<empty>"
	}
	var sb strings.Builder
	t.preorder(&sb, t.root, 0)
	return sb.String()
}

func (t *Tree) preorder(sb *strings.Builder, id NodeID, depth int) {
	n := t.nodes[id]
	fmt.Fprintf(sb, "%s%s\n", strings.Repeat("  ", depth), n.Symbol.Name())
	for _, child := range n.Children {
		t.preorder(sb, child, depth+1)
	}
}
