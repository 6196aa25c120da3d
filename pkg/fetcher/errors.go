package fetcher

import "errors"

var (
	ErrBuildClient = errors.New("build http client")
	ErrFetch       = errors.New("fetch url")
	ErrReadBody    = errors.New("read response body")
)
