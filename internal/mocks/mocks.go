package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/aureapp/aure-backend/internal/models"
)

// MockCopyGenerator is a mock implementation of service.CopyGenerator.
type MockCopyGenerator struct {
	mock.Mock
}

func (m *MockCopyGenerator) GenerateCopy(ctx context.Context, perfume models.Perfume, mood, occasion string, weather models.TemperatureCategory) (string, string, error) {
	args := m.Called(ctx, perfume, mood, occasion, weather)
	return args.String(0), args.String(1), args.Error(2)
}

// MockObjectStore is a mock implementation of service.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PresignUpload(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) PresignDownload(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
