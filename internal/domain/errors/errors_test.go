package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	if ErrContractNotFound == nil {
		t.Error("ErrContractNotFound should not be nil")
	}
	if ErrIncomplete == nil {
		t.Error("ErrIncomplete should not be nil")
	}
	if ErrCannotCancelExecuted == nil {
		t.Error("ErrCannotCancelExecuted should not be nil")
	}
	if ErrPartyEmailNotFound == nil {
		t.Error("ErrPartyEmailNotFound should not be nil")
	}
}
