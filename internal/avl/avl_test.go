package avl_test

import (
	"testing"

	"github.com/arborix/intervals/internal/avl"
)

// testNode is a minimal AVL node used to exercise the avl package in
// isolation, without any interval-specific payload.
type testNode struct {
	key         int
	left, right *testNode
	height      int
}

func (n *testNode) GetLeft() *testNode  { return n.left }
func (n *testNode) GetRight() *testNode { return n.right }
func (n *testNode) SetLeft(m *testNode) { n.left = m }
func (n *testNode) SetRight(m *testNode) {
	n.right = m
}
func (n *testNode) GetHeight() int { return n.height }
func (n *testNode) SetHeight(h int) {
	n.height = h
}
func (n *testNode) Update() { avl.UpdateHeight[*testNode](n) }

func insert(n *testNode, key int) *testNode {
	if n == nil {
		return &testNode{key: key}
	}
	if key < n.key {
		n.left = insert(n.left, key)
	} else {
		n.right = insert(n.right, key)
	}
	return avl.Rebalance[*testNode](n, avl.RotateLeft[*testNode], avl.RotateRight[*testNode])
}

func height(n *testNode) int {
	if n == nil {
		return -1
	}
	return n.height
}

func checkBalanced(t *testing.T, n *testNode) {
	t.Helper()
	if n == nil {
		return
	}
	lh, rh := height(n.left), height(n.right)
	if lh-rh > 1 || rh-lh > 1 {
		t.Fatalf("node %d unbalanced: left height %d, right height %d", n.key, lh, rh)
	}
	if n.height != 1+max(lh, rh) {
		t.Fatalf("node %d has stale height %d", n.key, n.height)
	}
	checkBalanced(t, n.left)
	checkBalanced(t, n.right)
}

func TestRebalanceKeepsTreeBalanced(t *testing.T) {
	var root *testNode
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, -1, -2, -3} {
		root = insert(root, k)
		checkBalanced(t, root)
	}
}

func TestRotateLeftUpdatesBottomUp(t *testing.T) {
	parent := &testNode{key: 1}
	child := &testNode{key: 2}
	parent.right = child
	parent.height = 1
	child.height = 0

	pivot := avl.RotateLeft[*testNode](parent)
	if pivot != child {
		t.Fatalf("expected pivot to be the rotated-up child, got key %d", pivot.key)
	}
	if pivot.left != parent {
		t.Fatalf("expected old root to become left child of pivot")
	}
	// Updating the demoted parent before the pivot gives 0 and 1; the
	// reverse order would compute the pivot from the parent's stale height.
	if parent.height != 0 || pivot.height != 1 {
		t.Fatalf("heights after rotation: parent %d, pivot %d; want 0 and 1", parent.height, pivot.height)
	}
}
