package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"individual", RoleIndividual, false},
		{"business", RoleBusiness, false},
		{"admin", "", true},
		{"Individual", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownRole) {
				t.Fatalf("ParseRole(%q): expected ErrUnknownRole, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRole(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleIndividual.Valid() || !RoleBusiness.Valid() {
		t.Fatalf("closed-set roles must be valid")
	}
	if Role("admin").Valid() || Role("").Valid() {
		t.Fatalf("roles outside the closed set must be invalid")
	}
}
