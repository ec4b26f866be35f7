package mocks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// Feature is a mock implementation of loader.Feature
type Feature struct {
	mock.Mock
}

func (m *Feature) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Feature) IsEnabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Feature) Load(app fiber.Router) error {
	args := m.Called(app)
	return args.Error(0)
}
