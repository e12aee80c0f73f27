package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gipnoze/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "contact_profile:get:777", shared.BuildCacheKey("contact_profile:get", int64(777)))
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "a:b:c", shared.BuildCacheKey("a", "b", "c"))
}
