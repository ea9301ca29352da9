package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, run(&buf))
	assert.Equal(t, `Testing vehicles:
I am driving a car. Start it....
I am riding a bike...
Drive this truck....
`, buf.String())
}
