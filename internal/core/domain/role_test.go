package domain

import "testing"

func TestRole_Can(t *testing.T) {
	cases := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleUser, PermSweetRead, true},
		{RoleUser, PermSweetWrite, true},
		{RoleUser, PermSweetPurchase, true},
		{RoleUser, PermSweetDelete, false},
		{RoleUser, PermSweetRestock, false},
		{RoleUser, PermMovementRead, false},
		{RoleAdmin, PermSweetDelete, true},
		{RoleAdmin, PermSweetRestock, true},
		{RoleAdmin, PermSweetPurchase, true},
		{RoleAdmin, PermMovementRead, true},
		{Role("guest"), PermSweetRead, false},
	}

	for _, tc := range cases {
		if got := tc.role.Can(tc.perm); got != tc.want {
			t.Fatalf("%s.Can(%s) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole(""); !ok || r != RoleUser {
		t.Fatalf("empty role should default to user, got %q %v", r, ok)
	}
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Fatalf("expected admin, got %q %v", r, ok)
	}
	if _, ok := ParseRole("Admin"); ok {
		t.Fatalf("role names are case-sensitive")
	}
	if _, ok := ParseRole("root"); ok {
		t.Fatalf("unknown role accepted")
	}
}

func TestSweetPatch_Validate(t *testing.T) {
	neg := -1.0
	negQty := -3
	empty := ""
	price := 4.5

	if err := (SweetPatch{}).Validate(); err == nil {
		t.Fatalf("empty patch should fail")
	}
	if err := (SweetPatch{Price: &neg}).Validate(); err == nil {
		t.Fatalf("negative price should fail")
	}
	if err := (SweetPatch{Quantity: &negQty}).Validate(); err == nil {
		t.Fatalf("negative quantity should fail")
	}
	if err := (SweetPatch{Name: &empty}).Validate(); err == nil {
		t.Fatalf("empty name should fail")
	}
	if err := (SweetPatch{Price: &price}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
