package service

import (
	"time"

	service "catalog/internal/domain/service"
	uuid "github.com/google/uuid"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// Issue provides a mock function with given fields: userID, sessionID, expiresAt
func (_m *MockTokenService) Issue(userID int64, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	ret := _m.Called(userID, sessionID, expiresAt)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(int64, uuid.UUID, time.Time) (string, error)); ok {
		return rf(userID, sessionID, expiresAt)
	}
	if rf, ok := ret.Get(0).(func(int64, uuid.UUID, time.Time) string); ok {
		r0 = rf(userID, sessionID, expiresAt)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(int64, uuid.UUID, time.Time) error); ok {
		r1 = rf(userID, sessionID, expiresAt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Issue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Issue'
type MockTokenService_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call
//   - userID int64
//   - sessionID uuid.UUID
//   - expiresAt time.Time
func (_e *MockTokenService_Expecter) Issue(userID interface{}, sessionID interface{}, expiresAt interface{}) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", userID, sessionID, expiresAt)}
}

func (_c *MockTokenService_Issue_Call) Run(run func(userID int64, sessionID uuid.UUID, expiresAt time.Time)) *MockTokenService_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int64), args[1].(uuid.UUID), args[2].(time.Time))
	})
	return _c
}

func (_c *MockTokenService_Issue_Call) Return(_a0 string, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_Issue_Call) RunAndReturn(run func(int64, uuid.UUID, time.Time) (string, error)) *MockTokenService_Issue_Call {
	_c.Call.Return(run)
	return _c
}

// Parse provides a mock function with given fields: token
func (_m *MockTokenService) Parse(token string) (*service.SessionClaims, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Parse")
	}

	var r0 *service.SessionClaims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.SessionClaims, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) *service.SessionClaims); ok {
		r0 = rf(token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.SessionClaims)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Parse_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Parse'
type MockTokenService_Parse_Call struct {
	*mock.Call
}

// Parse is a helper method to define mock.On call
//   - token string
func (_e *MockTokenService_Expecter) Parse(token interface{}) *MockTokenService_Parse_Call {
	return &MockTokenService_Parse_Call{Call: _e.mock.On("Parse", token)}
}

func (_c *MockTokenService_Parse_Call) Run(run func(token string)) *MockTokenService_Parse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_Parse_Call) Return(_a0 *service.SessionClaims, _a1 error) *MockTokenService_Parse_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_Parse_Call) RunAndReturn(run func(string) (*service.SessionClaims, error)) *MockTokenService_Parse_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
