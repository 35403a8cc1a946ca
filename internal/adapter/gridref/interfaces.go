package gridref

//go:generate mockgen -source=interfaces.go -destination=../../mocks/gridref_mocks.go -package=mocks

// Converter resolves a military grid reference to signed decimal degrees.
type Converter interface {
	ToLatLng(ref string) (lat, lng float64, err error)
}
