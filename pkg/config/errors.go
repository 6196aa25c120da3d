package config

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrEmptySiteList  = errors.New("site list has no valid urls")
	ErrReadSiteList   = errors.New("read site list")
	ErrNoAdapters     = errors.New("no eligible network adapters")
	ErrPromptFailed   = errors.New("operator prompt failed")
	ErrParseUserInput = errors.New("invalid operator input")
	ErrNotInteractive = errors.New("stdin is not a terminal; pass the missing flags instead of relying on prompts")
)
