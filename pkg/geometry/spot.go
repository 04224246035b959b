package geometry

// Spot is a circular surface feature. Lat, Lon and Radius are in degrees
// on the star's geographic grid; Contrast multiplies the flux inside the
// spot. Spots are immutable values; where spots overlap, the one added
// last wins.
type Spot struct {
	Lat      float64
	Lon      float64
	Radius   float64
	Contrast float64
}

// NewSpot creates a new Spot
func NewSpot(lat, lon, radius, contrast float64) Spot {
	return Spot{Lat: lat, Lon: lon, Radius: radius, Contrast: contrast}
}
