package macgen

import "errors"

var ErrReadRandom = errors.New("read random octets")
