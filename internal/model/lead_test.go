package model

import "testing"

func TestIsValidService(t *testing.T) {
	if !IsValidService("") {
		t.Error("empty selection should be valid")
	}
	for _, opt := range ServiceOptions {
		if !IsValidService(opt) {
			t.Errorf("option %q should be valid", opt)
		}
	}
	if IsValidService("Skydiving") {
		t.Error("unknown option should be invalid")
	}
}
