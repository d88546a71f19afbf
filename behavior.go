// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

// CopyFn produces an owned duplicate of the payload referenced by src
type CopyFn[T any] func(src *T) *T

// DestroyFn releases all resources owned by the payload
type DestroyFn[T any] func(el *T)

// DefaultFn produces a newly owned default valued payload
type DefaultFn[T any] func() *T

// Behavior binds the three element lifecycle callbacks a vector uses
// to manage payloads of a particular kind. The callbacks are fixed at
// creation and never change.
//
// Nil fields are backfilled at construction with the shallow
// defaults: a nil Copy stores the caller's reference itself, a nil
// Destroy does nothing, and a nil Default yields the empty marker.
// The zero Behavior is therefore the shallow (non owning) policy.
type Behavior[T any] struct {
	Copy    CopyFn[T]
	Destroy DestroyFn[T]
	Default DefaultFn[T]
}

func shallowCopy[T any](src *T) *T { return src }

func noopDestroy[T any](*T) {}

func nilDefault[T any]() *T { return nil }

// Shallow is the non owning policy: the vector stores references
// without copying or destroying payload content. The caller and the
// vector must agree on who eventually releases each element; with
// this policy that is always the caller.
func Shallow[T any]() Behavior[T] {
	return Behavior[T]{}
}

// Value is the owning policy for plain value payloads: copies
// dereference the source into fresh storage, default construction
// yields the zero value, and released payloads are left to the
// garbage collector.
func Value[T any]() Behavior[T] {
	return Behavior[T]{
		Copy:    func(src *T) *T { cp := *src; return &cp },
		Destroy: func(*T) {},
		Default: func() *T { return new(T) },
	}
}
