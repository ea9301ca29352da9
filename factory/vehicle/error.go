package vehicle

import "errors"

var (
	// ErrInvalidSelector kind does not name a Car, Bike or Truck
	ErrInvalidSelector = errors.New("unknown vehicle type")
)
