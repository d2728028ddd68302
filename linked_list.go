package slist

import (
	"fmt"
	"io"
	log "log/slog"
	"strings"
)

// LinkedList is a singly linked list addressed through its head node.
// The zero value is an empty list. It is not safe for concurrent use.
type LinkedList struct {
	head *Node
}

// New returns an empty list.
func New() *LinkedList {
	return &LinkedList{}
}

// NewWithHead returns a list whose chain starts at head.
func NewWithHead(head *Node) (*LinkedList, error) {
	if head == nil {
		return nil, invalidArgument("the head node can't be nil", nil)
	}
	return &LinkedList{head: head}, nil
}

func (l *LinkedList) Head() *Node {
	return l.head
}

// SetHead replaces the head, and with it the whole chain the list reaches.
func (l *LinkedList) SetHead(node *Node) error {
	if node == nil {
		return invalidArgument("the head node can't be nil", nil)
	}
	l.head = node
	return nil
}

func (l *LinkedList) IsEmpty() bool {
	return l.head == nil
}

// Size walks the chain and returns the number of nodes in it.
func (l *LinkedList) Size() int {
	size := 0
	for current := l.head; current != nil; current = current.next {
		size++
	}
	return size
}

// InsertFirst makes node the new head. Any next link node already had is overwritten.
func (l *LinkedList) InsertFirst(node *Node) error {
	if node == nil {
		log.Debug("insert first rejected nil node")
		return invalidArgument("the node can't be nil", nil)
	}
	node.next = l.head
	l.head = node
	return nil
}

// InsertLast links node after the last node of the chain.
//
// On an empty list node simply becomes the head and keeps its own next link,
// so a node that still points somewhere brings its trailing nodes along.
func (l *LinkedList) InsertLast(node *Node) error {
	if node == nil {
		log.Debug("insert last rejected nil node")
		return invalidArgument("the node can't be nil", nil)
	}
	if l.IsEmpty() {
		l.head = node
		return nil
	}
	current := l.head
	for current.next != nil {
		current = current.next
	}
	current.next = node
	return nil
}

// FindNode returns the first node structurally equal to node, or nil.
func (l *LinkedList) FindNode(node *Node) *Node {
	if node == nil || l.head == nil {
		return nil
	}
	current := l.head
	for current != nil && !current.Equals(node) {
		current = current.next
	}
	return current
}

// FindNodePosition returns the zero-based position of the first node structurally
// equal to node, or -1 when there is none.
func (l *LinkedList) FindNodePosition(node *Node) (int, error) {
	if node == nil {
		return -1, invalidArgument("the node which position you are trying to find can't be nil", nil)
	}
	if l.IsEmpty() {
		return -1, outOfBounds("can't find the position of a node in an empty list", nil)
	}
	position := 0
	for current := l.head; current != nil; current = current.next {
		if current.Equals(node) {
			return position, nil
		}
		position++
	}
	return -1, nil
}

// RemoveHead unlinks the head. The old head keeps its next link.
func (l *LinkedList) RemoveHead() error {
	if l.IsEmpty() {
		log.Debug("remove head on empty list")
		return outOfBounds("can't remove the head from an empty list", nil)
	}
	l.head = l.head.next
	return nil
}

// RemoveNode unlinks the first node structurally equal to node.
// It is not an error when no such node exists; the list is left as is.
func (l *LinkedList) RemoveNode(node *Node) error {
	if node == nil {
		return invalidArgument("the node to remove can't be nil", nil)
	}
	if l.IsEmpty() {
		return outOfBounds("can't remove a node from an empty list", nil)
	}

	var previous *Node
	for current := l.head; current != nil; current = current.next {
		if current.Equals(node) {
			if previous == nil {
				l.head = current.next
			} else {
				previous.next = current.next
			}
			return nil
		}
		previous = current
	}
	log.Debug("remove node found no match", "value", node.value)
	return nil
}

// InsertNodeAtPosition splices node in so that it ends up at the given zero-based position.
// The list is never extended: a position past the end of the chain fails with OutOfBounds.
func (l *LinkedList) InsertNodeAtPosition(node *Node, position int) error {
	if node == nil {
		return invalidArgument("the node you are trying to insert can't be nil", position)
	}
	if position < 0 {
		return invalidArgument("the position you are trying to insert at can't be negative", position)
	}
	if position == 0 {
		return l.InsertFirst(node)
	}
	if l.IsEmpty() {
		return outOfBounds(fmt.Sprintf("can't insert the node at position %d in an empty list", position), position)
	}

	current := l.head
	for i := 0; current != nil && i < position-1; i++ {
		current = current.next
	}
	if current == nil {
		log.Debug("insert at position past the end", "position", position)
		return outOfBounds(fmt.Sprintf("the position %d is out of bounds, list will not be extended to reach it", position), position)
	}

	node.next = current.next
	current.next = node
	return nil
}

// String renders the values from head to tail, e.g. "[0]->[1]->[2]->NULL".
func (l *LinkedList) String() string {
	var sb strings.Builder
	for current := l.head; current != nil; current = current.next {
		fmt.Fprintf(&sb, "[%d]->", current.value)
	}
	sb.WriteString("NULL")
	return sb.String()
}

// Print writes the rendered list followed by a newline to w.
func (l *LinkedList) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, l.String())
	return err
}
