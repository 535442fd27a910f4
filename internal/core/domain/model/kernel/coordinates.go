package kernel

import (
	"errors"
	"fmt"

	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	minLatitude  = decimal.NewFromInt(-90)
	maxLatitude  = decimal.NewFromInt(90)
	minLongitude = decimal.NewFromInt(-180)
	maxLongitude = decimal.NewFromInt(180)
)

// ErrCoordinatesAreNotConstructed is returned by Validate for a zero Coordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates or ParseCoordinates")

// Coordinates is a WGS84 point. Latitude and longitude are kept as decimals so
// the values written by the seeding path round-trip through numeric columns unchanged.
type Coordinates struct { //nolint:recvcheck // value object
	latitude  decimal.Decimal
	longitude decimal.Decimal
	guard     guard.ConstructorGuard
}

// NewCoordinates validates latitude in [-90, 90] and longitude in [-180, 180].
//
// Example:
//
//	sf, err := kernel.NewCoordinates(
//	    decimal.RequireFromString("37.72585854879952"),
//	    decimal.RequireFromString("-122.38684218300128"),
//	)
func NewCoordinates(latitude, longitude decimal.Decimal) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// ParseCoordinates is NewCoordinates for textual input.
func ParseCoordinates(latitude, longitude string) (Coordinates, error) {
	lat, latErr := decimal.NewFromString(latitude)
	if latErr != nil {
		latErr = errs.NewValueIsInvalidErrorWithCause("latitude", latErr)
	}
	long, longErr := decimal.NewFromString(longitude)
	if longErr != nil {
		longErr = errs.NewValueIsInvalidErrorWithCause("longitude", longErr)
	}
	if err := errors.Join(latErr, longErr); err != nil {
		return Coordinates{}, err
	}
	return NewCoordinates(lat, long)
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Latitude() decimal.Decimal {
	return c.latitude
}

func (c Coordinates) Longitude() decimal.Decimal {
	return c.longitude
}

func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude.Equal(other.latitude) && c.longitude.Equal(other.longitude)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%s, %s)", c.latitude, c.longitude)
}

func (c *Coordinates) setLatitude(latitude decimal.Decimal) error {
	if latitude.LessThan(minLatitude) || latitude.GreaterThan(maxLatitude) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude decimal.Decimal) error {
	if longitude.LessThan(minLongitude) || longitude.GreaterThan(maxLongitude) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	c.longitude = longitude
	return nil
}
