// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mixin provides small connectable tolerance carriers shared by
// cooperating solver components (step, preconditioner-application
// policy, termination criterion, driver). Connecting two mixins of the
// same kind makes them observe each other: setting the value on one
// propagates it, silently, to every connected peer.
package mixin

// Value is a connectable scalar. It is the generic building block
// behind the typed mixins in this package (Eps, AbsoluteAccuracy,
// RelativeAccuracy, IterativeRefinements, MaxSteps, Verbosity), which
// wrap it because each typed mixin validates and names its value
// differently.
type Value[T any] struct {
	value T
	peers []*Value[T]
}

// NewValue creates a Value holding v, connected to no one.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{value: v}
}

// Get returns the current value.
func (n *Value[T]) Get() T { return n.value }

// Set assigns v and notifies every connected peer by way of their
// update method, which assigns without notifying in turn. This is the
// recursion guard: update never calls Set, so the peer chain cannot
// re-enter Set.
func (n *Value[T]) Set(v T) {
	n.value = v
	for _, p := range n.peers {
		p.update(v)
	}
}

// update assigns v without notifying peers. It exists so that
// Connect-ed nodes can form an undirected peer set without infinite
// recursion: Set notifies via update, and update never re-notifies.
func (n *Value[T]) update(v T) {
	n.value = v
}

// Connect subscribes n and other to each other: after Connect returns,
// calling Set on either one updates the value observed by both. Connect
// is symmetric and need only be called once per pair.
func (n *Value[T]) Connect(other *Value[T]) {
	n.peers = append(n.peers, other)
	other.peers = append(other.peers, n)
}
