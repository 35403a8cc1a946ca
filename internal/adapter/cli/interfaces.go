package cli

import (
	"github.com/marcos-nsantos/geocoord/internal/domain/geodetic"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/cli_mocks.go -package=mocks

type CoordinateService interface {
	Parse(input string) (*geodetic.Coordinate, error)
}
