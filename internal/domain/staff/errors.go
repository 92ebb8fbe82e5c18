package staff

import "errors"

var ErrProfileNotFound = errors.New("staff profile not found")
