package config

import "errors"

// ErrAlreadyParsed is returned when Parse is called twice on a Parser
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line flags are malformed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
