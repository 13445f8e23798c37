package favorites

// Permission is the level of access a grant gives on a list.
type Permission string

const (
	// PermissionNone requires ownership; it is never stored.
	PermissionNone Permission = ""
	PermissionView Permission = "view"
	PermissionEdit Permission = "edit"
)

// Valid reports whether p can be stored in a grant.
func (p Permission) Valid() bool {
	return p == PermissionView || p == PermissionEdit
}

// Rank orders permissions: edit above view above none.
func (p Permission) Rank() int {
	switch p {
	case PermissionEdit:
		return 2
	case PermissionView:
		return 1
	default:
		return 0
	}
}

// Granting returns the stored permissions that satisfy p. EDIT implies VIEW, so
// a VIEW requirement is met by either grant. PermissionNone is met by no grant.
func (p Permission) Granting() []Permission {
	switch p {
	case PermissionView:
		return []Permission{PermissionView, PermissionEdit}
	case PermissionEdit:
		return []Permission{PermissionEdit}
	default:
		return nil
	}
}

// AccessRule is the relationship a caller needs with a list. The store turns it
// into a SQL condition and services evaluate it in-process with Allows; both
// paths rely on Granting and Grantees so they cannot drift apart.
type AccessRule struct {
	Caller string
	// IncludeDefaultOwner makes the default list behave as if the caller owned it.
	IncludeDefaultOwner bool
	// Required is the grant a non-owner needs. PermissionNone restricts to owners.
	Required Permission
}

// Grantees returns the grantee values that apply to the caller.
func (r AccessRule) Grantees() []string {
	return []string{r.Caller, Everyone}
}

// Owners returns the owner addresses that satisfy the rule without a grant.
func (r AccessRule) Owners() []string {
	if r.IncludeDefaultOwner {
		return []string{r.Caller, DefaultListUserAddress}
	}
	return []string{r.Caller}
}

// Allows reports whether a list owned by owner, on which the caller holds
// grant (PermissionNone if none), satisfies the rule.
func (r AccessRule) Allows(owner string, grant Permission) bool {
	for _, o := range r.Owners() {
		if o == owner {
			return true
		}
	}
	for _, p := range r.Required.Granting() {
		if p == grant {
			return true
		}
	}
	return false
}

// HasAccess reports whether caller may use list with the required permission.
func HasAccess(list *List, caller string, required Permission, includeDefaultOwner bool) bool {
	if list == nil {
		return false
	}
	rule := AccessRule{Caller: caller, IncludeDefaultOwner: includeDefaultOwner, Required: required}
	return rule.Allows(list.UserAddress, list.Permission)
}
