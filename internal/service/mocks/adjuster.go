package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type MockAdjuster struct {
	mock.Mock
}

func NewMockAdjuster(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdjuster {
	m := &MockAdjuster{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdjuster) Adjust(ctx context.Context, auth model.AuthorizationContext, p model.AdjustParams) (model.MovementLog, error) {
	args := m.Called(ctx, auth, p)
	return args.Get(0).(model.MovementLog), args.Error(1)
}
