package factory

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryFunc(t *testing.T) {
	var f Factory[string, int] = FactoryFunc[string, int](func(_ context.Context, param int) (string, error) {
		if param < 0 {
			return "", errors.New("negative")
		}
		return strconv.Itoa(param), nil
	})

	s, err := f.Create(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = f.Create(context.Background(), -1)
	assert.EqualError(t, err, "negative")
	assert.Empty(t, s)
}
