package rop

import (
	"errors"

	"github.com/rs/zerolog"
)

// Kind is a named error kind created by DefineErrorKind. Kinds compare by
// identity: two calls with the same name give two different kinds.
type Kind struct {
	name        string
	explanation string
}

// DefineErrorKind declares a new error kind. Instances are created with New
// and render as "<name>, <explanation>".
func DefineErrorKind(name, explanation string) *Kind {
	return &Kind{name: name, explanation: explanation}
}

func (k *Kind) Name() string {
	return k.name
}

func (k *Kind) Explanation() string {
	return k.explanation
}

func (k *Kind) String() string {
	return k.name + ", " + k.explanation
}

// New returns a fresh instance of the kind.
func (k *Kind) New() *KindError {
	return &KindError{kind: k}
}

// Match reports whether err is an instance of k.
func (k *Kind) Match(err error) bool {
	var ke *KindError
	return errors.As(err, &ke) && ke.kind == k
}

// KindOf returns the kind err was created from, if any.
func KindOf(err error) (*Kind, bool) {
	var ke *KindError
	if errors.As(err, &ke) && ke.kind != nil {
		return ke.kind, true
	}
	return nil, false
}

// KindError is an instance of a Kind. Values should come from (*Kind).New;
// a nil or zero KindError renders as "<nil>" and matches no kind.
type KindError struct {
	kind *Kind
}

func (e *KindError) Error() string {
	if e == nil || e.kind == nil {
		return "<nil>"
	}
	return e.kind.String()
}

func (e *KindError) Name() string {
	if e == nil || e.kind == nil {
		return ""
	}
	return e.kind.name
}

func (e *KindError) Kind() *Kind {
	if e == nil {
		return nil
	}
	return e.kind
}

// Is makes errors.Is match any other instance of the same kind.
func (e *KindError) Is(target error) bool {
	t, ok := target.(*KindError)
	return ok && t != nil && e != nil && e.kind != nil && t.kind == e.kind
}

func (e *KindError) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil || e.kind == nil {
		return
	}
	ev.Str("kind", e.kind.name).Str("explanation", e.kind.explanation)
}
