package linkextract

import "errors"

var ErrParseBaseURL = errors.New("parse base url")
