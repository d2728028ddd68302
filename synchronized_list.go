package slist

import (
	"io"
	"sync"
)

// SynchronizedList wraps a LinkedList with a mutex so one list can be shared by goroutines.
// Nodes handed to it must not be mutated by the caller while they are linked in.
type SynchronizedList struct {
	list   *LinkedList
	locker *sync.Mutex
}

// NewSynchronized returns a thread-safe wrapper around list. A nil list gets a fresh empty one.
func NewSynchronized(list *LinkedList) *SynchronizedList {
	if list == nil {
		list = New()
	}
	return &SynchronizedList{
		list:   list,
		locker: &sync.Mutex{},
	}
}

func (sl *SynchronizedList) Head() *Node {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.Head()
}

func (sl *SynchronizedList) SetHead(node *Node) error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.SetHead(node)
}

func (sl *SynchronizedList) IsEmpty() bool {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.IsEmpty()
}

func (sl *SynchronizedList) Size() int {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.Size()
}

func (sl *SynchronizedList) InsertFirst(node *Node) error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.InsertFirst(node)
}

func (sl *SynchronizedList) InsertLast(node *Node) error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.InsertLast(node)
}

func (sl *SynchronizedList) FindNode(node *Node) *Node {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.FindNode(node)
}

func (sl *SynchronizedList) FindNodePosition(node *Node) (int, error) {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.FindNodePosition(node)
}

func (sl *SynchronizedList) RemoveHead() error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.RemoveHead()
}

func (sl *SynchronizedList) RemoveNode(node *Node) error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.RemoveNode(node)
}

func (sl *SynchronizedList) InsertNodeAtPosition(node *Node, position int) error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.InsertNodeAtPosition(node, position)
}

func (sl *SynchronizedList) String() string {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.String()
}

func (sl *SynchronizedList) Print(w io.Writer) error {
	sl.locker.Lock()
	defer sl.locker.Unlock()
	return sl.list.Print(w)
}
