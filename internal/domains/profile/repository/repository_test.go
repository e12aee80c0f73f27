package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gipnoze/infras/otel/mocks"
	"gipnoze/internal/domains/profile/repository"
)

func TestNew(t *testing.T) {
	repo := repository.New(nil, mocks.NewOtel())

	assert.NotNil(t, repo)
}
