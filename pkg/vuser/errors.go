package vuser

import "errors"

var (
	ErrBuildClient = errors.New("build http client")
	ErrParseRoot   = errors.New("parse root url")
)
