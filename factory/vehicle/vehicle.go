package vehicle

import (
	"fmt"
	"io"
)

// Vehicle interface.
// Only Car, Bike and Truck implement it.
type Vehicle interface {
	// Describe returns the fixed message of the vehicle.
	Describe() string

	// Kind returns the kind the vehicle was created for.
	Kind() Kind

	vehicle()
}

// Car This is a car.
// The blank field keeps the size non-zero, so every allocation gets its own address.
type Car struct{ _ byte }

func (*Car) Describe() string {
	return "I am driving a car. Start it...."
}

func (*Car) Kind() Kind { return CarKind }

func (*Car) vehicle() {}

// Bike This is a bike.
type Bike struct{ _ byte }

func (*Bike) Describe() string {
	return "I am riding a bike..."
}

func (*Bike) Kind() Kind { return BikeKind }

func (*Bike) vehicle() {}

// Truck This is a truck.
type Truck struct{ _ byte }

func (*Truck) Describe() string {
	return "Drive this truck...."
}

func (*Truck) Kind() Kind { return TruckKind }

func (*Truck) vehicle() {}

// Drive writes the description of v as a single line to w.
func Drive(w io.Writer, v Vehicle) error {
	_, err := fmt.Fprintln(w, v.Describe())
	return err
}
