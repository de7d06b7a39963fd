package validator

import (
	"errors"
	"testing"
)

func TestValidator(t *testing.T) {
	v := New()
	if v.AsError() != nil {
		t.Fatal("empty validator should not be an error")
	}

	v.Check(false, "location", "is required")
	v.Check(true, "budget", "ignored")
	v.AddError("hangoutName", "is required")
	v.AddError("hangoutName", "too long")

	err := v.AsError()
	var got *Validator
	if !errors.As(err, &got) {
		t.Fatalf("expected *Validator, got %T", err)
	}

	if want := "hangoutName: is required, too long; location: is required"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if got.First("hangoutName") != "is required" {
		t.Errorf("First() = %q", got.First("hangoutName"))
	}

	if got.First("budget") != "" {
		t.Error("budget should have no errors")
	}
}
