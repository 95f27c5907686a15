package repository

import (
	domainrepository "directory/internal/domain/repository"

	mock "github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is an autogenerated mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// UserRepo provides a mock function with no fields
func (_m *MockRepositoryFactory) UserRepo() domainrepository.UserRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepo")
	}

	var r0 domainrepository.UserRepository
	if rf, ok := ret.Get(0).(func() domainrepository.UserRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domainrepository.UserRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_UserRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UserRepo'
type MockRepositoryFactory_UserRepo_Call struct {
	*mock.Call
}

// UserRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) UserRepo() *MockRepositoryFactory_UserRepo_Call {
	return &MockRepositoryFactory_UserRepo_Call{Call: _e.mock.On("UserRepo")}
}

func (_c *MockRepositoryFactory_UserRepo_Call) Run(run func()) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) Return(_a0 domainrepository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) RunAndReturn(run func() domainrepository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
