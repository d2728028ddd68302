package slist

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Node is a single chain element: an integer value and a forward link.
// The zero value is a usable node holding 0 with no successor.
type Node struct {
	value int
	next  *Node
}

// NewNode returns a node holding value and pointing at next (nil for none).
func NewNode(value int, next *Node) *Node {
	return &Node{value: value, next: next}
}

func (n *Node) Value() int {
	return n.value
}

func (n *Node) SetValue(value int) {
	n.value = value
}

func (n *Node) Next() *Node {
	return n.next
}

func (n *Node) SetNext(next *Node) {
	n.next = next
}

// Equals reports whether n and other hold the same values all the way down their chains.
// Identity is not required: two distinct chains with identical values are equal.
// Nil equals only nil.
func (n *Node) Equals(other *Node) bool {
	x, y := n, other
	for x != nil && y != nil {
		// Same node means the remaining chains are the same chain.
		if x == y {
			return true
		}
		if x.value != y.value {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}

// Hash returns a hash of the values from n to the end of its chain.
// Nodes that are Equals hash the same.
func (n *Node) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for c := n; c != nil; c = c.next {
		binary.LittleEndian.PutUint64(buf[:], uint64(c.value))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// String shows this node's value and the value of its immediate successor.
func (n *Node) String() string {
	if n.next == nil {
		return fmt.Sprintf("[value=%d, nextNodeValue=null]", n.value)
	}
	return fmt.Sprintf("[value=%d, nextNodeValue=%d]", n.value, n.next.value)
}
