package rotation

import "errors"

var (
	ErrInvalidCIDR     = errors.New("invalid cidr block")
	ErrNoHostCandidates = errors.New("cidr has no usable host addresses")
)
