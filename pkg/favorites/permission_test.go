package favorites

import (
	"testing"
)

const (
	owner    = "0x1111111111111111111111111111111111111111"
	stranger = "0x2222222222222222222222222222222222222222"
)

func TestPermission_Granting(t *testing.T) {
	tests := []struct {
		required Permission
		grant    Permission
		want     bool
	}{
		{PermissionView, PermissionView, true},
		{PermissionView, PermissionEdit, true},
		{PermissionEdit, PermissionView, false},
		{PermissionEdit, PermissionEdit, true},
		{PermissionNone, PermissionView, false},
		{PermissionNone, PermissionEdit, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.required)+"/"+string(tt.grant), func(t *testing.T) {
			got := false
			for _, p := range tt.required.Granting() {
				if p == tt.grant {
					got = true
				}
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if PermissionEdit.Rank() <= PermissionView.Rank() || PermissionView.Rank() <= PermissionNone.Rank() {
		t.Fatal("expected edit to rank above view above none")
	}
	if PermissionNone.Valid() || !PermissionView.Valid() || !PermissionEdit.Valid() {
		t.Fatal("only view and edit can be stored")
	}
}

func TestHasAccess(t *testing.T) {
	own := &List{UserAddress: owner}
	defaultList := &List{UserAddress: DefaultListUserAddress}

	tests := []struct {
		name           string
		list           *List
		caller         string
		required       Permission
		includeDefault bool
		want           bool
	}{
		{"owner without grant", own, owner, PermissionNone, false, true},
		{"stranger without grant", own, stranger, PermissionView, false, false},
		{"stranger with view reads", &List{UserAddress: owner, Permission: PermissionView}, stranger, PermissionView, false, true},
		{"stranger with view cannot edit", &List{UserAddress: owner, Permission: PermissionView}, stranger, PermissionEdit, false, false},
		{"stranger with edit reads", &List{UserAddress: owner, Permission: PermissionEdit}, stranger, PermissionView, false, true},
		{"grant does not make owner", &List{UserAddress: owner, Permission: PermissionEdit}, stranger, PermissionNone, false, false},
		{"default list included", defaultList, stranger, PermissionEdit, true, true},
		{"default list excluded", defaultList, stranger, PermissionNone, false, false},
		{"nil list", nil, owner, PermissionNone, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAccess(tt.list, tt.caller, tt.required, tt.includeDefault); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAccessRule_GranteesAndOwners(t *testing.T) {
	rule := AccessRule{Caller: stranger, IncludeDefaultOwner: true, Required: PermissionView}

	grantees := rule.Grantees()
	if len(grantees) != 2 || grantees[0] != stranger || grantees[1] != Everyone {
		t.Fatalf("unexpected grantees: %v", grantees)
	}
	owners := rule.Owners()
	if len(owners) != 2 || owners[1] != DefaultListUserAddress {
		t.Fatalf("unexpected owners: %v", owners)
	}
	rule.IncludeDefaultOwner = false
	if owners := rule.Owners(); len(owners) != 1 || owners[0] != stranger {
		t.Fatalf("unexpected owners: %v", owners)
	}
}
