package dagnode

import (
	"errors"
	"fmt"
)

// ErrMalformedNode is the sentinel wrapped by every *MalformedNodeError, so
// callers can test for the category with errors.Is(err, dagnode.ErrMalformedNode)
// without caring about the specific kind or reason.
var ErrMalformedNode = errors.New("malformed node")

// MalformedNodeError is returned by WithNewParents when the requested
// parent list violates the node's declared arity or places a
// kind-incompatible node into a slot (§4.1, §7).
type MalformedNodeError struct {
	// Kind is the kind of the node that rejected the parent list.
	Kind Kind
	// Reason is a short, human-readable description of the violation.
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed %s node: %s", e.Kind, e.Reason)
}

func (e *MalformedNodeError) Unwrap() error {
	return ErrMalformedNode
}

// NewArityError builds a MalformedNodeError describing an arity mismatch.
func NewArityError(k Kind, want Arity, got int) *MalformedNodeError {
	return &MalformedNodeError{
		Kind:   k,
		Reason: fmt.Sprintf("wants %s parents, got %d", want, got),
	}
}

// NewParentKindError builds a MalformedNodeError describing a parent whose
// kind is incompatible with the slot it was placed in.
func NewParentKindError(k Kind, slot int, wantKind, gotKind Kind) *MalformedNodeError {
	return &MalformedNodeError{
		Kind:   k,
		Reason: fmt.Sprintf("parent %d must be %s, got %s", slot, wantKind, gotKind),
	}
}
