// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: The pluggable order structure used by traverse.Search.
// Policy:
//   - Queue is FIFO (breadth-first), Stack is LIFO (depth-first).
//   - Both are backed by gods containers and expose a typed facade.

package core

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Frontier holds discovered but not yet expanded nodes.
// The discipline of Remove decides the traversal order.
type Frontier[T comparable] interface {
	// Add inserts id into the frontier.
	Add(id T)
	// Remove takes the next node out. ok is false when the frontier is empty.
	Remove() (id T, ok bool)
	// IsEmpty reports whether Remove would fail.
	IsEmpty() bool
	// Len returns the number of nodes held.
	Len() int
}

// Queue is a FIFO Frontier.
type Queue[T comparable] struct {
	q *arrayqueue.Queue
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{q: arrayqueue.New()}
}

// Add enqueues id at the tail.
func (f *Queue[T]) Add(id T) { f.q.Enqueue(id) }

// Remove dequeues from the head.
func (f *Queue[T]) Remove() (T, bool) {
	v, ok := f.q.Dequeue()
	if !ok {
		var zero T
		return zero, false
	}

	id, _ := v.(T) // a nil interface element comes back as the zero T

	return id, true
}

// IsEmpty reports whether the queue holds no nodes.
func (f *Queue[T]) IsEmpty() bool { return f.q.Empty() }

// Len returns the queue length.
func (f *Queue[T]) Len() int { return f.q.Size() }

// Stack is a LIFO Frontier.
type Stack[T comparable] struct {
	s *arraystack.Stack
}

// NewStack returns an empty LIFO frontier.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{s: arraystack.New()}
}

// Add pushes id on top.
func (f *Stack[T]) Add(id T) { f.s.Push(id) }

// Remove pops the top.
func (f *Stack[T]) Remove() (T, bool) {
	v, ok := f.s.Pop()
	if !ok {
		var zero T
		return zero, false
	}

	id, _ := v.(T) // a nil interface element comes back as the zero T

	return id, true
}

// IsEmpty reports whether the stack holds no nodes.
func (f *Stack[T]) IsEmpty() bool { return f.s.Empty() }

// Len returns the stack depth.
func (f *Stack[T]) Len() int { return f.s.Size() }
