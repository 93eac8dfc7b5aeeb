package field_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/form"
)

func TestField_DefaultsToEmpty(t *testing.T) {
	if got := field.New().Value(); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
	var zero field.Field
	if got := zero.Value(); got != "" {
		t.Fatalf("expected empty zero value, got %q", got)
	}
}

func TestField_InitialValue(t *testing.T) {
	if got := field.New("hello").Value(); got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
}

func TestField_OnChangeStoresLastValue(t *testing.T) {
	f := field.New("hello")
	var handler form.EventHandler = f.OnChange

	if err := handler(form.Event{Value: "world"}); err != nil {
		t.Fatalf("on change: %v", err)
	}
	if got := f.Value(); got != "world" {
		t.Fatalf("expected world, got %q", got)
	}

	f.Set("again")
	if got := f.Value(); got != "again" {
		t.Fatalf("expected again, got %q", got)
	}
}

func TestField_ReadBySubmitCallback(t *testing.T) {
	remember := field.New("no")
	var got string
	engine, err := form.New(form.Config{
		InitialValues: form.Values{"username": "hello"},
		OnSubmit: func(context.Context, form.Values) error {
			got = remember.Value()
			return nil
		},
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := remember.OnChange(form.Event{Value: "yes"}); err != nil {
		t.Fatalf("on change: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := engine.Submit(ctx).Wait(ctx)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}

	if res.Outcome != form.OutcomeSubmitted {
		t.Fatalf("expected submitted outcome, got %s", res.Outcome)
	}
	if got != "yes" {
		t.Fatalf("expected holder value yes, got %q", got)
	}
	if _, ok := res.Values["remember"]; ok {
		t.Fatalf("holder must not become a form field: %v", res.Values)
	}
}
