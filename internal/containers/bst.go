package containers

import "golang.org/x/exp/constraints"

// Node is a node of a BST. Callers only get to read its key.
type Node[K constraints.Ordered] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

// Key returns the key stored in the node
func (n *Node[K]) Key() K {
	return n.key
}

// BST is an unbalanced binary search tree.
//
// Keys less than a node go to its left subtree, everything else (including
// equal keys) goes right, so duplicates are kept as separate nodes. The
// shape of the tree depends only on insertion order; it is never rebalanced.
type BST[K constraints.Ordered] struct {
	root *Node[K]
	size int
}

// NewBST creates a new empty tree
func NewBST[K constraints.Ordered]() *BST[K] {
	return &BST[K]{}
}

// Insert adds key to the tree
func (t *BST[K]) Insert(key K) {
	t.root = insertNode(t.root, key)
	t.size++
}

// insertNode inserts key below n and returns the root of the resulting subtree
func insertNode[K constraints.Ordered](n *Node[K], key K) *Node[K] {
	if n == nil {
		return &Node[K]{key: key}
	}
	if key < n.key {
		n.left = insertNode(n.left, key)
	} else {
		n.right = insertNode(n.right, key)
	}
	return n
}

// Search returns the first node on the search path whose key equals key,
// or nil if there is none
func (t *BST[K]) Search(key K) *Node[K] {
	return searchNode(t.root, key)
}

func searchNode[K constraints.Ordered](n *Node[K], key K) *Node[K] {
	if n == nil || n.key == key {
		return n
	}
	if key < n.key {
		return searchNode(n.left, key)
	}
	return searchNode(n.right, key)
}

// Contains returns true if key was inserted at least once
func (t *BST[K]) Contains(key K) bool {
	return t.Search(key) != nil
}

// InOrder returns all keys in non-decreasing order. Each call builds a new slice.
func (t *BST[K]) InOrder() []K {
	out := make([]K, 0, t.size)
	return inorder(t.root, out)
}

func inorder[K constraints.Ordered](n *Node[K], out []K) []K {
	if n == nil {
		return out
	}
	out = inorder(n.left, out)
	out = append(out, n.key)
	return inorder(n.right, out)
}

// Min returns the smallest key. ok is false if the tree is empty.
func (t *BST[K]) Min() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key. ok is false if the tree is empty.
func (t *BST[K]) Max() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// Height returns the number of nodes on the longest root-to-leaf path
func (t *BST[K]) Height() int {
	return height(t.root)
}

func height[K constraints.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Len returns the number of keys in the tree, duplicates included
func (t *BST[K]) Len() int {
	return t.size
}
