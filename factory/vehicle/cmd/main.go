package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-leo/factory-method/factory"
	"github.com/go-leo/factory-method/factory/vehicle"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	var f factory.Factory[vehicle.Vehicle, vehicle.Kind] = vehicle.Factory{}
	ctx := context.Background()

	car, err := f.Create(ctx, vehicle.CarKind)
	if err != nil {
		return err
	}
	bike, err := f.Create(ctx, vehicle.BikeKind)
	if err != nil {
		return err
	}
	truck, err := f.Create(ctx, vehicle.TruckKind)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Testing vehicles:"); err != nil {
		return err
	}
	for _, v := range []vehicle.Vehicle{car, bike, truck} {
		if err := vehicle.Drive(w, v); err != nil {
			return err
		}
	}
	return nil
}
