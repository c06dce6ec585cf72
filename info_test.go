// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jwalk_test

import (
	"testing"

	"github.com/mfj-labs/jwalk"
)

func TestInfo_kindAndRole(t *testing.T) {
	tests := []struct {
		info     jwalk.Info
		wantKind jwalk.Info
		wantRole jwalk.Info
	}{
		{jwalk.String | jwalk.Value, jwalk.String, jwalk.Value},
		{jwalk.String | jwalk.Key, jwalk.String, jwalk.Key},
		{jwalk.Number | jwalk.Value | jwalk.Negative, jwalk.Number, jwalk.Value},
		{jwalk.Array | jwalk.Open, jwalk.Array, jwalk.Open},
		{jwalk.Object | jwalk.Close, jwalk.Object, jwalk.Close},
		{jwalk.True | jwalk.Value, jwalk.True, jwalk.Value},
	}
	for _, test := range tests {
		if got := test.info.Kind(); got != test.wantKind {
			t.Errorf("Kind(%v) = %v, want %v", test.info, got, test.wantKind)
		}
		if got := test.info.Role(); got != test.wantRole {
			t.Errorf("Role(%v) = %v, want %v", test.info, got, test.wantRole)
		}
	}
}

func TestInfo_has(t *testing.T) {
	info := jwalk.Number | jwalk.Value | jwalk.Negative | jwalk.HasFraction
	if !info.Has(jwalk.Negative) {
		t.Error("Has(Negative) = false, want true")
	}
	if !info.Has(jwalk.Negative | jwalk.HasFraction) {
		t.Error("Has(Negative|HasFraction) = false, want true")
	}
	if info.Has(jwalk.HasExponent) {
		t.Error("Has(HasExponent) = true, want false")
	}
}

func TestInfo_string(t *testing.T) {
	tests := []struct {
		info jwalk.Info
		want string
	}{
		{0, "none"},
		{jwalk.String | jwalk.Value, "String|Value"},
		{jwalk.Array | jwalk.Open, "Array|Open"},
	}
	for _, test := range tests {
		if got := test.info.String(); got != test.want {
			t.Errorf("(%d).String() = %q, want %q", test.info, got, test.want)
		}
	}
}
