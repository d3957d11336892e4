package internal

import (
	"errors"
	"reflect"
	"testing"
)

// AssertNoError fails the test immediately on an unexpected error.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
}

// AssertErrored checks that an error occurred.
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, but got nil")
	}
}

// AssertErrorIs checks that an error wraps the expected sentinel.
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()

	if !errors.Is(err, want) {
		t.Fatalf("got error %v, want %v", err, want)
	}
}

// AssertEqual checks that the values are equal.
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		t.Errorf("\ngot:  %+v\nwant: %+v", got, want)
	}
}

// AssertDeepEqual checks that the values are structurally equal.
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("\ngot:  %+v\nwant: %+v", got, want)
	}
}

// AssertTrue checks that the value is true.
func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Error("expected true, got false")
	}
}

// AssertNotEmptyString checks the string is not empty.
func AssertNotEmptyString(t *testing.T, got string) {
	t.Helper()

	if got == "" {
		t.Error("unexpected empty string")
	}
}
