// Package slist implements a singly linked list of integer nodes.
//
// A LinkedList only holds a reference to its first node (the head) and reaches
// the rest of the chain through each Node's forward link. Callers allocate the
// nodes and hand them to the list mutators, which splice them in by rewriting
// next pointers; nodes are never copied.
//
// Searches compare nodes structurally: two nodes are equal when their values
// are equal and their downstream chains are equal, regardless of identity.
//
// The list is not safe for concurrent use. Wrap it with NewSynchronized when
// several goroutines need to share one list.
package slist
