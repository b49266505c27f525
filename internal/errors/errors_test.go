package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	err := SheetNotFound("Top_200_X")
	wrapped := Wrap(err, "loading dataset")

	if GetCode(wrapped) != CodeSheetNotFound {
		t.Errorf("expected code %s after wrapping, got %s", CodeSheetNotFound, GetCode(wrapped))
	}
	if !HasCode(wrapped, CodeSheetNotFound) {
		t.Error("HasCode should see through the wrap")
	}
	if !stderrors.Is(wrapped, wrapped) {
		t.Error("wrapped error should satisfy errors.Is with itself")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWrapForeignError(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := Wrap(cause, "reading workbook")

	if GetCode(wrapped) != CodeInternalError {
		t.Errorf("foreign errors wrap with INTERNAL_ERROR, got %s", GetCode(wrapped))
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("Unwrap chain should reach the cause")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if GetCode(stderrors.New("plain")) != "UNKNOWN" {
		t.Error("plain errors report UNKNOWN")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  *AppError
		code string
	}{
		{FileNotFound("contacts.xlsx"), CodeFileNotFound},
		{SheetNotFound("X"), CodeSheetNotFound},
		{InvalidInput("bad limit"), CodeInvalidInput},
		{ConfigInvalid("missing port"), CodeConfigInvalid},
		{InternalError("oops"), CodeInternalError},
	}

	for _, test := range tests {
		if test.err.Code != test.code {
			t.Errorf("expected code %s, got %s", test.code, test.err.Code)
		}
		if test.err.Error() == "" {
			t.Errorf("constructor for %s produced empty message", test.code)
		}
	}
}
