// Package avl provides the rotation and rebalancing primitives shared by
// every self-balancing tree in this module. It is deliberately thin: it
// knows nothing about intervals, spans, or overlap counts. Each concrete
// tree (dynamic interval tree, interval binary search tree) supplies its
// own node type implementing Node, including an Update method that
// recomputes height and whatever structure-specific aggregates it keeps.
package avl

// Node is the shape a self-balancing tree's node pointer type must expose
// so the rotation and rebalancing logic below can be written once. N is
// the node pointer type itself (e.g. *myNode[K]); the self-referential
// constraint lets the generic functions return and accept nodes of the
// concrete type.
type Node[N any] interface {
	comparable
	GetLeft() N
	GetRight() N
	SetLeft(N)
	SetRight(N)
	GetHeight() int
	SetHeight(int)

	// Update recomputes this node's height and any structure-specific
	// aggregates from its own local data and its children's current
	// state. It must tolerate nil children.
	Update()
}

// heightOf returns n's height, or -1 for a nil node, so that a leaf's
// single real child has balance factor +-1 against its absent sibling.
func heightOf[N Node[N]](n N) int {
	var zero N
	if n == zero {
		return -1
	}
	return n.GetHeight()
}

// BalanceFactor returns the height of n's left subtree minus the height of
// its right subtree.
func BalanceFactor[N Node[N]](n N) int {
	return heightOf(n.GetLeft()) - heightOf(n.GetRight())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// UpdateHeight sets n's height from its children's current heights. Node
// implementations typically call this from within their own Update.
func UpdateHeight[N Node[N]](n N) {
	n.SetHeight(1 + maxInt(heightOf(n.GetLeft()), heightOf(n.GetRight())))
}

// RotateLeft performs a single left rotation around n, returning the new
// subtree root. It updates the rotated child (n) before the rotated parent
// (the returned pivot), satisfying the bottom-up aggregate update order
// every tree variant relies on.
func RotateLeft[N Node[N]](n N) N {
	pivot := n.GetRight()
	n.SetRight(pivot.GetLeft())
	pivot.SetLeft(n)
	n.Update()
	pivot.Update()
	return pivot
}

// RotateRight performs a single right rotation around n, returning the new
// subtree root, with the same bottom-up update order as RotateLeft.
func RotateRight[N Node[N]](n N) N {
	pivot := n.GetLeft()
	n.SetLeft(pivot.GetRight())
	pivot.SetRight(n)
	n.Update()
	pivot.Update()
	return pivot
}

// Rebalance restores the AVL invariant at n after an insertion or removal
// below it, applying a double rotation first when the heavy child leans
// away from n. rotateLeft and rotateRight let callers substitute rotations
// that carry extra structure-specific bookkeeping (as the interval binary
// search tree does for its Less/Equal/Greater sets) while reusing the same
// case analysis. n.Update() is always called first so BalanceFactor sees
// n's current children.
func Rebalance[N Node[N]](n N, rotateLeft, rotateRight func(N) N) N {
	n.Update()
	switch bf := BalanceFactor(n); {
	case bf > 1:
		if BalanceFactor(n.GetLeft()) < 0 {
			n.SetLeft(rotateLeft(n.GetLeft()))
		}
		return rotateRight(n)
	case bf < -1:
		if BalanceFactor(n.GetRight()) > 0 {
			n.SetRight(rotateRight(n.GetRight()))
		}
		return rotateLeft(n)
	default:
		return n
	}
}
