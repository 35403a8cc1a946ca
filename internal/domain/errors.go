package domain

import "errors"

var (
	ErrEmptyInput           = errors.New("empty coordinate string")
	ErrGridConversion       = errors.New("grid reference conversion failed")
	ErrInvalidGridReference = errors.New("invalid grid reference")
	ErrUnsupportedGridZone  = errors.New("unsupported grid zone")
	ErrInvalidLocation      = errors.New("invalid location")
	ErrUnknownFormat        = errors.New("unknown coordinate format")
)
