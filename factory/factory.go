package factory

import "context"

// Factory creates a new T from param. Each call returns an instance owned by the caller.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// The FactoryFunc type is an adapter to allow the use of ordinary functions as Factory.
// If f is a function with the appropriate signature, FactoryFunc(f) is a Factory that calls f.
type FactoryFunc[T any, P any] func(ctx context.Context, param P) (T, error)

// Create calls f(ctx, param).
func (f FactoryFunc[T, P]) Create(ctx context.Context, param P) (T, error) {
	return f(ctx, param)
}
