package domain

import (
	"net/url"
	"strconv"

	"github.com/qanda-dev/qanda/internal/errors"
)

// Pagination bounds a question list query. The zero value means "no bounds".
type Pagination struct {
	Limit  int
	Offset int
}

// ExtractPagination reads limit/offset from query parameters. Both absent is
// the unpaginated default; providing only one of the pair is an error, as is
// a value that is not an integer.
func ExtractPagination(params url.Values) (Pagination, error) {
	limitRaw := params.Get("limit")
	offsetRaw := params.Get("offset")

	if limitRaw == "" && offsetRaw == "" {
		return Pagination{}, nil
	}
	if limitRaw == "" || offsetRaw == "" {
		return Pagination{}, errors.Missing()
	}

	limit, err := strconv.Atoi(limitRaw)
	if err != nil {
		return Pagination{}, errors.Parse(err.Error(), err)
	}
	offset, err := strconv.Atoi(offsetRaw)
	if err != nil {
		return Pagination{}, errors.Parse(err.Error(), err)
	}

	return Pagination{Limit: limit, Offset: offset}, nil
}
