package logging

import "errors"

var (
	ErrCreateLogFile = errors.New("create log file")
	ErrWriteEvent    = errors.New("write event")
	ErrCloseWriter   = errors.New("close writer")
	ErrMarshalData   = errors.New("marshal event data")
)
