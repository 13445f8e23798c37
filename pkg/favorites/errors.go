package favorites

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
)

// Generic failures. They wrap the underlying database error.
var (
	ErrListCreation   = errors.New("list could not be created")
	ErrListUpdate     = errors.New("list could not be updated")
	ErrPickCreation   = errors.New("pick could not be created")
	ErrAccessCreation = errors.New("access could not be created")
)

// ListNotFoundError is returned when a list does not exist or the caller
// lacks the relationship needed to use it.
type ListNotFoundError struct {
	ListID string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("list %s not found", e.ListID)
}

// ListsNotFoundError carries every list id a bulk operation may not use.
type ListsNotFoundError struct {
	ListIDs []string
}

func (e *ListsNotFoundError) Error() string {
	return fmt.Sprintf("lists not found: %s", strings.Join(e.ListIDs, ", "))
}

// DuplicatedListError is returned when an owner already has a list with the name.
type DuplicatedListError struct {
	Name string
}

func (e *DuplicatedListError) Error() string {
	return fmt.Sprintf("list %q already exists", e.Name)
}

type PickNotFoundError struct {
	ListID string
	ItemID string
}

func (e *PickNotFoundError) Error() string {
	return fmt.Sprintf("pick of item %s not found in list %s", e.ItemID, e.ListID)
}

type PickAlreadyExistsError struct {
	ListID string
	ItemID string
}

func (e *PickAlreadyExistsError) Error() string {
	return fmt.Sprintf("item %s is already picked in list %s", e.ItemID, e.ListID)
}

type AccessNotFoundError struct {
	ListID     string
	Permission Permission
	Grantee    string
}

func (e *AccessNotFoundError) Error() string {
	return fmt.Sprintf("%s access for %s on list %s not found", e.Permission, e.Grantee, e.ListID)
}

type DuplicatedAccessError struct {
	ListID     string
	Permission Permission
	Grantee    string
}

func (e *DuplicatedAccessError) Error() string {
	return fmt.Sprintf("%s access for %s on list %s already exists", e.Permission, e.Grantee, e.ListID)
}

// ItemNotFoundError is returned by the item oracle for unknown items.
type ItemNotFoundError struct {
	ItemID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %s not found", e.ItemID)
}

// QueryFailureError is returned when the item oracle could not answer.
type QueryFailureError struct {
	Message string
}

func (e *QueryFailureError) Error() string {
	return fmt.Sprintf("item query failed: %s", e.Message)
}

// ScoreError is returned when the voting power of an address could not be computed.
type ScoreError struct {
	Address string
	Reason  string
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("voting power of %s could not be computed: %s", e.Address, e.Reason)
}

// ToServiceError maps domain errors onto service error categories.
// Errors that already are service errors, and nil, are returned unchanged.
func ToServiceError(err error) error {
	if err == nil {
		return nil
	}
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	var (
		listNotFound   *ListNotFoundError
		listsNotFound  *ListsNotFoundError
		dupList        *DuplicatedListError
		pickNotFound   *PickNotFoundError
		pickExists     *PickAlreadyExistsError
		accessNotFound *AccessNotFoundError
		dupAccess      *DuplicatedAccessError
		itemNotFound   *ItemNotFoundError
		queryFailure   *QueryFailureError
	)
	switch {
	case errors.As(err, &listNotFound):
		return apperrors.ResourceNotFoundError(err, listNotFound.Error())
	case errors.As(err, &listsNotFound):
		return apperrors.ResourceNotFoundError(err, listsNotFound.Error())
	case errors.As(err, &pickNotFound):
		return apperrors.ResourceNotFoundError(err, pickNotFound.Error())
	case errors.As(err, &accessNotFound):
		return apperrors.ResourceNotFoundError(err, accessNotFound.Error())
	case errors.As(err, &itemNotFound):
		return apperrors.ResourceNotFoundError(err, itemNotFound.Error())
	case errors.As(err, &dupList):
		return apperrors.ConflictError(err, dupList.Error())
	case errors.As(err, &pickExists):
		return apperrors.ConflictError(err, pickExists.Error())
	case errors.As(err, &dupAccess):
		return apperrors.ConflictError(err, dupAccess.Error())
	case errors.As(err, &queryFailure):
		return apperrors.DependencyError(err, queryFailure.Error())
	default:
		return apperrors.GeneralError(err)
	}
}
