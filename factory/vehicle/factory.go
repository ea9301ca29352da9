package vehicle

import (
	"context"
	"fmt"

	"github.com/go-leo/factory-method/factory"
)

var _ factory.Factory[Vehicle, Kind] = Factory{}

// New creates a new vehicle of the given kind. Every call allocates, so the caller owns the result.
func New(kind Kind) (Vehicle, error) {
	switch kind {
	case CarKind:
		return &Car{}, nil
	case BikeKind:
		return &Bike{}, nil
	case TruckKind:
		return &Truck{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSelector, kind)
	}
}

// Factory creates vehicles by kind. The zero value is ready to use.
type Factory struct{}

// Create calls New(kind). Creation never blocks, so ctx is not consulted.
func (Factory) Create(_ context.Context, kind Kind) (Vehicle, error) {
	return New(kind)
}
