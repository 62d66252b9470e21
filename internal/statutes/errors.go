package statutes

import "errors"

var ErrInvalidTable = errors.New("invalid rule table")
