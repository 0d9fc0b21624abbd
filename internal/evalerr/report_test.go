package evalerr

import (
	"errors"
	"strings"
	"testing"
)

func TestAsReportRoundTrip(t *testing.T) {
	err := UnknownBinding("x", 3)
	rep, ok := AsReport(err)
	if !ok {
		t.Fatalf("expected AsReport to find a report")
	}
	if rep.Code != STR001 || rep.Cost != 3 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestAsReportFalseForPlainError(t *testing.T) {
	if _, ok := AsReport(errors.New("boom")); ok {
		t.Fatalf("expected AsReport to fail for a non-Report error")
	}
}

func TestErrorMessageIncludesCode(t *testing.T) {
	err := MissingField("Point", "z", 1)
	if !strings.HasPrefix(err.Error(), STR003+":") {
		t.Fatalf("Error() = %q, want prefix %q", err.Error(), STR003+":")
	}
}

func TestToJSONContainsCodeAndMessage(t *testing.T) {
	err := Host("+/2", "division by zero", 5)
	rep, _ := AsReport(err)
	js, jsonErr := rep.ToJSON(true)
	if jsonErr != nil {
		t.Fatalf("ToJSON error: %v", jsonErr)
	}
	if !strings.Contains(js, HostErrorCode) || !strings.Contains(js, "division by zero") {
		t.Fatalf("JSON missing expected fields: %s", js)
	}
}

func TestWrapReportNilIsNil(t *testing.T) {
	if WrapReport(nil) != nil {
		t.Fatalf("WrapReport(nil) should be nil")
	}
}

func TestGetErrorInfoKnownAndUnknown(t *testing.T) {
	if _, ok := GetErrorInfo(STR001); !ok {
		t.Fatalf("expected STR001 to be a known code")
	}
	if _, ok := GetErrorInfo("NOPE"); ok {
		t.Fatalf("expected an unknown code to report false")
	}
}
