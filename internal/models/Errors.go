package models

import "errors"

// ErrMalformedRequest marks a request body that cannot be decoded or is
// missing required fields.
var ErrMalformedRequest = errors.New("malformed request body")
