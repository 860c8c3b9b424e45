// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixin

import "testing"

func TestValueSetGet(t *testing.T) {
	v := NewValue(3.0)
	if got := v.Get(); got != 3.0 {
		t.Errorf("Get() = %v, want 3.0", got)
	}
	v.Set(5.0)
	if got := v.Get(); got != 5.0 {
		t.Errorf("Get() after Set = %v, want 5.0", got)
	}
}

func TestValueConnectPropagates(t *testing.T) {
	a := NewValue(1)
	b := NewValue(2)
	a.Connect(b)

	a.Set(7)
	if got := b.Get(); got != 7 {
		t.Errorf("b.Get() = %v, want 7 after a.Set(7)", got)
	}

	b.Set(9)
	if got := a.Get(); got != 9 {
		t.Errorf("a.Get() = %v, want 9 after b.Set(9)", got)
	}
}

func TestValueConnectDoesNotRecurse(t *testing.T) {
	a := NewValue(0)
	b := NewValue(0)
	a.Connect(b)

	// A malicious or buggy peer count should not cause unbounded
	// recursion; this simply must return.
	a.Set(1)
	if a.Get() != 1 || b.Get() != 1 {
		t.Errorf("a=%v b=%v, want both 1", a.Get(), b.Get())
	}
}

func TestValueStarTopology(t *testing.T) {
	hub := NewValue(0)
	leaf1 := NewValue(0)
	leaf2 := NewValue(0)
	hub.Connect(leaf1)
	hub.Connect(leaf2)

	hub.Set(42)
	if leaf1.Get() != 42 {
		t.Errorf("leaf1.Get() = %v, want 42", leaf1.Get())
	}
	if leaf2.Get() != 42 {
		t.Errorf("leaf2.Get() = %v, want 42", leaf2.Get())
	}
}
