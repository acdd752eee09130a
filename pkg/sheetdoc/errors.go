package sheetdoc

import "errors"

// ErrUnknownFormat indicates the input path has no recognized spreadsheet
// extension.
var ErrUnknownFormat = errors.New("unknown format")

// ErrNoProvider indicates no registered provider matches the requested name.
var ErrNoProvider = errors.New("no such provider")
