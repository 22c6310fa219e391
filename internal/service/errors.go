package service

import "errors"

var ErrForbidden = errors.New("owner access required")
