package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPublisher) PublishMovement(ctx context.Context, event model.MovementRecorded) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
