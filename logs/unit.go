package logs

import (
	"context"
	"errors"
	"fmt"
)

// Unit names the compilation unit being processed, usually a file path
type Unit string

type unitKey struct{}

func WithUnit(ctx context.Context, unit Unit) context.Context {
	return context.WithValue(ctx, unitKey{}, unit)
}

func UnitOf(ctx context.Context) (Unit, bool) {
	unit, ok := ctx.Value(unitKey{}).(Unit)
	return unit, ok
}

// WrapUnit attaches the unit in ctx to err
func WrapUnit(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	unit, ok := UnitOf(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("unit: %s", unit))
}
