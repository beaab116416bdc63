/*
Copyright © 2025 changheonshin
*/
package cmd

import (
	"context"

	"github.com/devlikebear/picsort/internal/imaging"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of ai.Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) DescribeImage(ctx context.Context, img imaging.Image) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) ClassifyImage(ctx context.Context, img imaging.Image, categories []string) (string, error) {
	args := m.Called(ctx, img, categories)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) SuggestCategory(ctx context.Context, img imaging.Image) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) String() string {
	args := m.Called()
	return args.String(0)
}
