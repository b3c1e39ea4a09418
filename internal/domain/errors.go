package domain

import "errors"

var (
	ErrPayloadNotObject = errors.New("event payload is not a JSON object")
	ErrConfigExists     = errors.New("config file already exists")
)
