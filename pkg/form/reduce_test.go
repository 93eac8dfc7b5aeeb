package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := initialState(Values{"a": "", "b": ""})

	next := Reduce(state, Change("a", "1"))
	next = Reduce(next, Blur("a"))
	next = Reduce(next, Validated(Errors{"b": "required"}))

	if diff := cmp.Diff(initialState(Values{"a": "", "b": ""}), state); diff != "" {
		t.Fatalf("input state mutated (-want +got):\n%s", diff)
	}

	want := State{
		Values:  Values{"a": "1", "b": ""},
		Errors:  Errors{"b": "required"},
		Touched: Touched{"a": true},
	}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Fatalf("reduced state mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_FixedFieldSet(t *testing.T) {
	state := initialState(Values{"a": ""})

	next := Reduce(state, Change("z", "1"))
	next = Reduce(next, Blur("z"))
	next = Reduce(next, Validated(Errors{"z": "nope", "a": "bad"}))

	want := State{
		Values:  Values{"a": ""},
		Errors:  Errors{"a": "bad"},
		Touched: Touched{},
	}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Fatalf("reduced state mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_SubmitLifecycle(t *testing.T) {
	state := Reduce(initialState(Values{"a": "", "b": ""}), Blur("a"))

	started := Reduce(state, Action{Type: ActionSubmitStart})
	if !started.IsSubmitting {
		t.Fatalf("expected IsSubmitting after submit_start")
	}
	if diff := cmp.Diff(Touched{"a": true, "b": true}, started.Touched); diff != "" {
		t.Fatalf("touched mismatch (-want +got):\n%s", diff)
	}

	settled := Reduce(started, Action{Type: ActionSubmitSettled})
	if settled.IsSubmitting {
		t.Fatalf("expected IsSubmitting cleared after submit_settled")
	}
	if diff := cmp.Diff(started.Touched, settled.Touched); diff != "" {
		t.Fatalf("settlement must keep touched flags (-want +got):\n%s", diff)
	}
}

func TestReduce_ValidatedReplacesErrors(t *testing.T) {
	state := Reduce(initialState(Values{"a": "", "b": ""}), Validated(Errors{"a": "x", "b": "y"}))
	state = Reduce(state, Validated(Errors{"b": "z"}))

	if diff := cmp.Diff(Errors{"b": "z"}, state.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	state := initialState(Values{"a": "1"})
	if diff := cmp.Diff(state, Reduce(state, Action{Type: "noop"})); diff != "" {
		t.Fatalf("unexpected change (-want +got):\n%s", diff)
	}
}
