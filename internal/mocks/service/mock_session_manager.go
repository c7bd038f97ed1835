package service

import (
	"context"

	entity "catalog/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockSessionManager is a mock type for the SessionManager type
type MockSessionManager struct {
	mock.Mock
}

type MockSessionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionManager) EXPECT() *MockSessionManager_Expecter {
	return &MockSessionManager_Expecter{mock: &_m.Mock}
}

// Establish provides a mock function with given fields: ctx, userID
func (_m *MockSessionManager) Establish(ctx context.Context, userID int64) (string, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Establish")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (string, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) string); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSessionManager_Establish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Establish'
type MockSessionManager_Establish_Call struct {
	*mock.Call
}

// Establish is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
func (_e *MockSessionManager_Expecter) Establish(ctx interface{}, userID interface{}) *MockSessionManager_Establish_Call {
	return &MockSessionManager_Establish_Call{Call: _e.mock.On("Establish", ctx, userID)}
}

func (_c *MockSessionManager_Establish_Call) Run(run func(ctx context.Context, userID int64)) *MockSessionManager_Establish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockSessionManager_Establish_Call) Return(_a0 string, _a1 error) *MockSessionManager_Establish_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionManager_Establish_Call) RunAndReturn(run func(context.Context, int64) (string, error)) *MockSessionManager_Establish_Call {
	_c.Call.Return(run)
	return _c
}

// Resume provides a mock function with given fields: ctx, token
func (_m *MockSessionManager) Resume(ctx context.Context, token string) (*entity.Session, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Resume")
	}

	var r0 *entity.Session
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Session, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Session); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Session)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSessionManager_Resume_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Resume'
type MockSessionManager_Resume_Call struct {
	*mock.Call
}

// Resume is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockSessionManager_Expecter) Resume(ctx interface{}, token interface{}) *MockSessionManager_Resume_Call {
	return &MockSessionManager_Resume_Call{Call: _e.mock.On("Resume", ctx, token)}
}

func (_c *MockSessionManager_Resume_Call) Run(run func(ctx context.Context, token string)) *MockSessionManager_Resume_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockSessionManager_Resume_Call) Return(_a0 *entity.Session, _a1 error) *MockSessionManager_Resume_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionManager_Resume_Call) RunAndReturn(run func(context.Context, string) (*entity.Session, error)) *MockSessionManager_Resume_Call {
	_c.Call.Return(run)
	return _c
}

// CurrentUserID provides a mock function with given fields: ctx
func (_m *MockSessionManager) CurrentUserID(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for CurrentUserID")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (int64, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSessionManager_CurrentUserID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CurrentUserID'
type MockSessionManager_CurrentUserID_Call struct {
	*mock.Call
}

// CurrentUserID is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockSessionManager_Expecter) CurrentUserID(ctx interface{}) *MockSessionManager_CurrentUserID_Call {
	return &MockSessionManager_CurrentUserID_Call{Call: _e.mock.On("CurrentUserID", ctx)}
}

func (_c *MockSessionManager_CurrentUserID_Call) Run(run func(ctx context.Context)) *MockSessionManager_CurrentUserID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockSessionManager_CurrentUserID_Call) Return(_a0 int64, _a1 error) *MockSessionManager_CurrentUserID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionManager_CurrentUserID_Call) RunAndReturn(run func(context.Context) (int64, error)) *MockSessionManager_CurrentUserID_Call {
	_c.Call.Return(run)
	return _c
}

// Terminate provides a mock function with given fields: ctx
func (_m *MockSessionManager) Terminate(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Terminate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSessionManager_Terminate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Terminate'
type MockSessionManager_Terminate_Call struct {
	*mock.Call
}

// Terminate is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockSessionManager_Expecter) Terminate(ctx interface{}) *MockSessionManager_Terminate_Call {
	return &MockSessionManager_Terminate_Call{Call: _e.mock.On("Terminate", ctx)}
}

func (_c *MockSessionManager_Terminate_Call) Run(run func(ctx context.Context)) *MockSessionManager_Terminate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockSessionManager_Terminate_Call) Return(_a0 error) *MockSessionManager_Terminate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSessionManager_Terminate_Call) RunAndReturn(run func(context.Context) error) *MockSessionManager_Terminate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSessionManager creates a new instance of MockSessionManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSessionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionManager {
	mock := &MockSessionManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
