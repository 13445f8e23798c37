// Package favorites holds the domain model shared by the lists, picks and access services.
package favorites

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultListID is the id of the reserved list every caller sees as their own.
	DefaultListID = "7f9e2a3b-5c1d-4e8f-9a6b-0d2c4e6f8a1b"
	// DefaultListName is the name the default list is seeded with.
	DefaultListName = "Favorites"
	// DefaultListUserAddress is the sentinel owner of the default list.
	DefaultListUserAddress = "0x0000000000000000000000000000000000000000"

	// Everyone is the grantee that matches every authenticated caller.
	Everyone = "*"

	// PreviewSize is the number of item ids returned as a list preview.
	PreviewSize = 4

	// DefaultPowerThreshold is the minimum voting power for a pick to count in public stats.
	DefaultPowerThreshold int64 = 1
)

// List is a named collection of picks owned by an address.
type List struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	UserAddress  string     `json:"user_address"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	IsPrivate    bool       `json:"is_private"`
	IsDefault    bool       `json:"is_default"`
	Permission   Permission `json:"permission,omitempty"`
	ItemsCount   int        `json:"items_count"`
	Preview      []string   `json:"preview_of_item_ids"`
	IsItemInList *bool      `json:"is_item_in_list,omitempty"`
}

// NewList holds the fields required to create a list.
type NewList struct {
	Name        string
	Description *string
	UserAddress string
	Private     bool
}

// ListUpdate holds the optional fields of a list update. Nil fields are left untouched.
type ListUpdate struct {
	Name        *string
	Description *string
	Private     *bool
}

// UpdatesColumns reports whether the update touches columns of the list row.
func (u ListUpdate) UpdatesColumns() bool {
	return u.Name != nil || u.Description != nil
}

// SortBy is a column lists can be ordered by.
type SortBy string

const (
	SortByCreatedAt SortBy = "created_at"
	SortByUpdatedAt SortBy = "updated_at"
	SortByName      SortBy = "name"
)

// Valid reports whether s is a known sort column.
func (s SortBy) Valid() bool {
	switch s {
	case SortByCreatedAt, SortByUpdatedAt, SortByName:
		return true
	}
	return false
}

// SortDirection is the order lists are returned in.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether d is a known direction.
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// ListsOptions filters and pages the lists visible to a caller.
type ListsOptions struct {
	UserAddress   string
	Limit         int
	Offset        int
	SortBy        SortBy
	SortDirection SortDirection
	ItemID        *string
	Query         *string
}

// GetListOptions controls how a single list is resolved for a caller. The
// default list resolves as if the caller owned it unless ExcludeDefaultOwner is set.
type GetListOptions struct {
	UserAddress         string
	ExcludeDefaultOwner bool
	RequiredPermission  Permission
}

// Rule returns the access rule described by the options.
func (o GetListOptions) Rule() AccessRule {
	return AccessRule{
		Caller:              o.UserAddress,
		IncludeDefaultOwner: !o.ExcludeDefaultOwner,
		Required:            o.RequiredPermission,
	}
}

// Pick is one user's favoriting of an item in a list.
type Pick struct {
	ItemID      string    `json:"item_id"`
	UserAddress string    `json:"user_address"`
	ListID      string    `json:"list_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// PicksOptions pages the picks of a list for a caller.
type PicksOptions struct {
	UserAddress string
	Limit       int
	Offset      int
}

// PickStats is the power-weighted pick count of an item.
type PickStats struct {
	ItemID       string `json:"item_id"`
	Count        int    `json:"count"`
	PickedByUser *bool  `json:"picked_by_user,omitempty"`
}

// StatsOptions filters pick statistics. An empty UserAddress means an anonymous caller.
type StatsOptions struct {
	UserAddress string
	Power       *int64
}

// Threshold returns the requested power threshold or the default one.
func (o StatsOptions) Threshold() int64 {
	if o.Power != nil {
		return *o.Power
	}
	return DefaultPowerThreshold
}

// Picker is an address that picked an item.
type Picker struct {
	UserAddress string    `json:"user_address"`
	CreatedAt   time.Time `json:"created_at"`
}

// PickersOptions filters and pages the pickers of an item.
type PickersOptions struct {
	UserAddress string
	Limit       int
	Offset      int
	Power       *int64
}

// Threshold returns the requested power threshold or the default one.
func (o PickersOptions) Threshold() int64 {
	if o.Power != nil {
		return *o.Power
	}
	return DefaultPowerThreshold
}

// BulkPick describes the lists an item is added to and removed from in one call.
type BulkPick struct {
	PickedFor    []string
	UnpickedFrom []string
}

// ListIDs returns the union of both sides without duplicates.
func (b BulkPick) ListIDs() []string {
	seen := make(map[string]struct{}, len(b.PickedFor)+len(b.UnpickedFrom))
	ids := make([]string, 0, len(b.PickedFor)+len(b.UnpickedFrom))
	for _, group := range [][]string{b.PickedFor, b.UnpickedFrom} {
		for _, id := range group {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// Overlap returns the ids present on both sides.
func (b BulkPick) Overlap() []string {
	picked := make(map[string]struct{}, len(b.PickedFor))
	for _, id := range b.PickedFor {
		picked[id] = struct{}{}
	}
	var overlap []string
	for _, id := range b.UnpickedFrom {
		if _, ok := picked[id]; ok {
			overlap = append(overlap, id)
		}
	}
	return overlap
}

// Access is a grant of a permission on a list to a grantee.
type Access struct {
	ListID     string     `json:"list_id"`
	Permission Permission `json:"permission"`
	Grantee    string     `json:"grantee"`
}

// Page is a window of results together with the total number of matches.
type Page[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
}

// IsValidListID reports whether id is a well formed list identifier.
func IsValidListID(id string) bool {
	return uuid.Validate(id) == nil
}
