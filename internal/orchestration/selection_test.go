package orchestration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/polymul/internal/transform"
)

func TestGetTransformersToRun_All(t *testing.T) {
	factory := transform.NewDefaultFactory()

	backends := GetTransformersToRun("all", factory)

	require.Len(t, backends, 3)
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name()
	}
	assert.Equal(t, []string{
		transform.BackendAccelerator,
		transform.BackendIterative,
		transform.BackendRecursive,
	}, names)
}

func TestGetTransformersToRun_Single(t *testing.T) {
	factory := transform.NewDefaultFactory()

	backends := GetTransformersToRun(transform.BackendRecursive, factory)

	require.Len(t, backends, 1)
	assert.Equal(t, transform.BackendRecursive, backends[0].Name())
}

func TestGetTransformersToRun_Unknown(t *testing.T) {
	factory := transform.NewDefaultFactory()

	assert.Nil(t, GetTransformersToRun("karatsuba", factory))
}
