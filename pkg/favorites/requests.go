package favorites

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its validate tags and returns a
// message naming the first offending field.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid field %s: failed on %s", fe.Field(), fe.Tag())
	}
	return err
}

// CreateListRequest is the body of a list creation.
type CreateListRequest struct {
	Name        string  `json:"name" validate:"required,max=32"`
	Description *string `json:"description" validate:"omitempty,max=100"`
	Private     bool    `json:"private"`
}

// UpdateListRequest is the body of a list update. Absent fields are left untouched.
type UpdateListRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=32"`
	Description *string `json:"description" validate:"omitempty,max=100"`
	Private     *bool   `json:"private"`
}

// ToUpdate converts the request into a domain update.
func (r UpdateListRequest) ToUpdate() ListUpdate {
	return ListUpdate{Name: r.Name, Description: r.Description, Private: r.Private}
}

// AddPickRequest is the body of adding an item to a list.
type AddPickRequest struct {
	ItemID string `json:"item_id" validate:"required,max=256"`
}

// AccessRequest is the body of granting or revoking access on a list.
type AccessRequest struct {
	Permission Permission `json:"permission" validate:"required,oneof=view edit"`
	Grantee    string     `json:"grantee" validate:"required,eq=*|eth_addr"`
}

// BulkPickRequest is the body of picking and unpicking an item across lists.
type BulkPickRequest struct {
	PickedFor    []string `json:"picked_for" validate:"omitempty,max=100,dive,uuid"`
	UnpickedFrom []string `json:"unpicked_from" validate:"omitempty,max=100,dive,uuid"`
}

// ToBulkPick converts the request into a domain bulk pick.
func (r BulkPickRequest) ToBulkPick() BulkPick {
	return BulkPick{PickedFor: r.PickedFor, UnpickedFrom: r.UnpickedFrom}
}
