package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryReturnsSingletonRepositories(t *testing.T) {
	f := NewFactory(nil)

	first := f.GetRepositories()
	second := f.GetRepositories()

	require.NotNil(t, first)
	assert.Same(t, first, second, "repositories must be constructed once")
}

func TestFactoryGetIdentityRepository(t *testing.T) {
	f := NewFactory(nil)

	identities := f.GetIdentityRepository()

	require.NotNil(t, identities)
	assert.Same(t, f.GetRepositories().Identities, identities)
}
