package transform

import "errors"

// Sentinel errors for the transform package
var (
	// ErrRootNotObject indicates the parsed document's top-level value is
	// not a JSON object and cannot be edited as a manifest
	ErrRootNotObject = errors.New("top-level JSON value is not an object")

	// ErrSectionNotObject indicates a manifest section that must be an
	// object (scripts, devDependencies) holds some other JSON type
	ErrSectionNotObject = errors.New("manifest section is not an object")
)
