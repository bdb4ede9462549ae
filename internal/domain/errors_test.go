package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "tzparse.rule",
		Kind: KindFormat,
		Path: "europe",
		Line: 12,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected errors.Is to match ErrFormat")
	}
	if errors.Is(err, ErrRange) {
		t.Fatalf("did not expect errors.Is to match ErrRange")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindFormat {
		t.Fatalf("expected kind %s", KindFormat)
	}
	if !strings.Contains(err.Error(), "europe:12") {
		t.Fatalf("expected path and line in message, got %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := ConfigurationError("tzdb.zone", "zone name is empty")

	if !IsKind(err, KindConfiguration) {
		t.Fatalf("expected IsKind to match configuration error")
	}
	if IsKind(errors.New("plain"), KindConfiguration) {
		t.Fatalf("plain errors carry no kind")
	}
}

func TestFormatErrorNamesToken(t *testing.T) {
	err := FormatError("tzparse.month", "northamerica", 3, "Foo", "invalid month")
	if !strings.Contains(err.Error(), `invalid month "Foo"`) {
		t.Fatalf("expected token in message, got %q", err.Error())
	}
}
