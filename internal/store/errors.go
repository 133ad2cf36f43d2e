package store

import "errors"

var ErrNotFound = errors.New("not found")
