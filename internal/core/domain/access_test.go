package domain

import "testing"

func TestAllowed_PolicyTable(t *testing.T) {
	cases := []struct {
		op   Operation
		role Role
		want bool
	}{
		{OpListClients, RoleAdmin, true},
		{OpListClients, RoleModerator, true},
		{OpListClients, RoleUser, true},
		{OpBirthdayClients, RoleUser, true},
		{OpGetClient, RoleUser, true},
		{OpCreateClient, RoleUser, true},
		{OpUpdateClient, RoleAdmin, true},
		{OpUpdateClient, RoleModerator, true},
		{OpUpdateClient, RoleUser, false},
		{OpDeleteClient, RoleAdmin, true},
		{OpDeleteClient, RoleModerator, false},
		{OpDeleteClient, RoleUser, false},
	}

	for _, tc := range cases {
		if got := Allowed(tc.role, tc.op); got != tc.want {
			t.Errorf("Allowed(%q, %q) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}

func TestAllowed_UnknownOperationDenied(t *testing.T) {
	if Allowed(RoleAdmin, Operation("clients:export")) {
		t.Error("unknown operation must be denied even for admin")
	}
}

func TestAllowed_UnknownRoleDenied(t *testing.T) {
	if Allowed(Role("superuser"), OpListClients) {
		t.Error("role outside the closed set must be denied")
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleModerator, RoleUser} {
		if !r.IsValid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("root").IsValid() {
		t.Error("\"root\" should not be valid")
	}
}
