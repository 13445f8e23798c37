package http

import (
	"net/http"
	"strconv"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
)

// Paging reads the limit and offset query parameters. A missing limit is
// defaultLimit and larger limits are capped at maxLimit.
func Paging(r *http.Request, defaultLimit, maxLimit int) (limit, offset int, err error) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			return 0, 0, apperrors.BadRequestError(err, "invalid limit")
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			return 0, 0, apperrors.BadRequestError(err, "invalid offset")
		}
	}
	return limit, offset, nil
}

// QueryInt64 reads an optional non-negative integer query parameter.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return nil, apperrors.BadRequestError(err, "invalid "+name)
	}
	return &n, nil
}

// QueryString reads an optional query parameter. Empty values count as absent.
func QueryString(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}
