package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lineq_go/shared"
)

func TestClampWithinRange(t *testing.T) {
	assert.Equal(t, 5.0, shared.Clamp(5.0, 0.0, 10.0))
	assert.Equal(t, 0.0, shared.Clamp(0.0, 0.0, 10.0))
	assert.Equal(t, 10.0, shared.Clamp(10.0, 0.0, 10.0))
}

func TestClampSaturates(t *testing.T) {
	assert.Equal(t, 0.0, shared.Clamp(-3.0, 0.0, 10.0))
	assert.Equal(t, 10.0, shared.Clamp(12.5, 0.0, 10.0))
}

func TestClampInts(t *testing.T) {
	assert.Equal(t, 7, shared.Clamp(7, 1, 9))
	assert.Equal(t, 1, shared.Clamp(-2, 1, 9))
	assert.Equal(t, 9, shared.Clamp(100, 1, 9))
}

func TestClampInvertedBoundsChecksMinFirst(t *testing.T) {
	assert.Equal(t, 10.0, shared.Clamp(5.0, 10.0, 0.0))
	assert.Equal(t, 0.0, shared.Clamp(20.0, 10.0, 0.0))
}
