package main

import "errors"

var (
	ErrNotRoot            = errors.New("must run as root")
	ErrLoadConfig         = errors.New("load configuration")
	ErrSnapshotOrRotation = errors.New("network snapshot or rotation setup failed")
	ErrOpenLogFile        = errors.New("open log file")
)
