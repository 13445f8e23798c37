package favoritesstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// ListDao is the database model of a list.
type ListDao struct {
	bun.BaseModel `bun:"table:lists,alias:l"`
	ID            string     `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name          string     `bun:"name,notnull,type:varchar(32)"`
	Description   *string    `bun:"description,type:varchar(100)"`
	UserAddress   string     `bun:"user_address,notnull,type:varchar(42)"`
	CreatedAt     time.Time  `bun:"created_at,notnull,nullzero,default:current_timestamp"`
	UpdatedAt     *time.Time `bun:"updated_at"`
}

// PickDao is the database model of a pick.
type PickDao struct {
	bun.BaseModel `bun:"table:picks,alias:p"`
	ItemID        string    `bun:"item_id,notnull,type:text"`
	UserAddress   string    `bun:"user_address,notnull,type:varchar(42)"`
	ListID        string    `bun:"list_id,notnull,type:uuid"`
	CreatedAt     time.Time `bun:"created_at,notnull,nullzero,default:current_timestamp"`
}

// AccessDao is the database model of an access grant.
type AccessDao struct {
	bun.BaseModel `bun:"table:acl,alias:a"`
	ListID        string `bun:"list_id,notnull,type:uuid"`
	Permission    string `bun:"permission,notnull,type:varchar(4)"`
	Grantee       string `bun:"grantee,notnull,type:varchar(42)"`
}

// VotingPowerDao is the last known voting power of an address.
type VotingPowerDao struct {
	bun.BaseModel `bun:"table:voting,alias:v"`
	UserAddress   string `bun:"user_address,pk,type:varchar(42)"`
	Power         int64  `bun:"power,notnull,default:0"`
}

// listRow is a list resolved for a caller, with its aggregates.
type listRow struct {
	bun.BaseModel `bun:"table:lists,alias:l"`
	ID            string     `bun:"id"`
	Name          string     `bun:"name"`
	Description   *string    `bun:"description"`
	UserAddress   string     `bun:"user_address"`
	CreatedAt     time.Time  `bun:"created_at"`
	UpdatedAt     *time.Time `bun:"updated_at"`
	Permission    *string    `bun:"permission"`
	ItemsCount    int        `bun:"items_count"`
	Preview       []string   `bun:"preview,array"`
	IsPrivate     bool       `bun:"is_private"`
	IsDefault     bool       `bun:"is_default"`
	IsItemInList  *bool      `bun:"is_item_in_list"`
	ListsCount    int        `bun:"lists_count"`
}

type pickRow struct {
	bun.BaseModel `bun:"table:picks,alias:p"`
	ItemID        string    `bun:"item_id"`
	UserAddress   string    `bun:"user_address"`
	ListID        string    `bun:"list_id"`
	CreatedAt     time.Time `bun:"created_at"`
	PicksCount    int       `bun:"picks_count"`
}

type pickerRow struct {
	bun.BaseModel `bun:"table:picks,alias:p"`
	UserAddress   string    `bun:"user_address"`
	CreatedAt     time.Time `bun:"created_at"`
	PicksCount    int       `bun:"picks_count"`
}

type statsRow struct {
	ItemID       string `bun:"item_id"`
	Count        int    `bun:"count"`
	PickedByUser *bool  `bun:"picked_by_user"`
}

func toList(row *listRow) *favorites.List {
	list := &favorites.List{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		UserAddress:  row.UserAddress,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		IsPrivate:    row.IsPrivate,
		IsDefault:    row.IsDefault,
		ItemsCount:   row.ItemsCount,
		Preview:      row.Preview,
		IsItemInList: row.IsItemInList,
	}
	if row.Permission != nil {
		list.Permission = favorites.Permission(*row.Permission)
	}
	if list.Preview == nil {
		list.Preview = []string{}
	}
	return list
}

func toPick(row *pickRow) *favorites.Pick {
	return &favorites.Pick{
		ItemID:      row.ItemID,
		UserAddress: row.UserAddress,
		ListID:      row.ListID,
		CreatedAt:   row.CreatedAt,
	}
}

func toPickDao(pick *favorites.Pick) *PickDao {
	return &PickDao{
		ItemID:      pick.ItemID,
		UserAddress: pick.UserAddress,
		ListID:      pick.ListID,
		CreatedAt:   pick.CreatedAt,
	}
}
