package handler

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/qanda-dev/qanda/internal/errors"
	"github.com/qanda-dev/qanda/internal/recovery"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeValidate reads a JSON body into dst and checks required fields.
// Either failure is the framework-level malformed-body rejection, not a
// domain failure.
func decodeValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return &recovery.MalformedBody{Err: err}
	}
	if err := validate.Struct(dst); err != nil {
		return &recovery.MalformedBody{Err: err}
	}
	return nil
}

// parseIdParam parses a numeric path parameter.
func parseIdParam(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Parse(err.Error(), err)
	}
	return id, nil
}
