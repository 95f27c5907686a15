package usecase

import (
	context "context"

	entity "directory/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	domainusecase "directory/internal/usecase"

	uuid "github.com/google/uuid"
)

// MockUserUsecase is an autogenerated mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

// GetUser provides a mock function with given fields: ctx, id
func (_m *MockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetUser")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_GetUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetUser'
type MockUserUsecase_GetUser_Call struct {
	*mock.Call
}

// GetUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockUserUsecase_Expecter) GetUser(ctx interface{}, id interface{}) *MockUserUsecase_GetUser_Call {
	return &MockUserUsecase_GetUser_Call{Call: _e.mock.On("GetUser", ctx, id)}
}

func (_c *MockUserUsecase_GetUser_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockUserUsecase_GetUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockUserUsecase_GetUser_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_GetUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_GetUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockUserUsecase_GetUser_Call {
	_c.Call.Return(run)
	return _c
}

// ListUsers provides a mock function with given fields: ctx
func (_m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListUsers")
	}

	var r0 []*entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.User, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.User); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_ListUsers_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListUsers'
type MockUserUsecase_ListUsers_Call struct {
	*mock.Call
}

// ListUsers is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUserUsecase_Expecter) ListUsers(ctx interface{}) *MockUserUsecase_ListUsers_Call {
	return &MockUserUsecase_ListUsers_Call{Call: _e.mock.On("ListUsers", ctx)}
}

func (_c *MockUserUsecase_ListUsers_Call) Run(run func(ctx context.Context)) *MockUserUsecase_ListUsers_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUserUsecase_ListUsers_Call) Return(_a0 []*entity.User, _a1 error) *MockUserUsecase_ListUsers_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_ListUsers_Call) RunAndReturn(run func(context.Context) ([]*entity.User, error)) *MockUserUsecase_ListUsers_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Register(ctx context.Context, input *domainusecase.RegisterUserInput) (*domainusecase.RegisterResult, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *domainusecase.RegisterResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domainusecase.RegisterUserInput) (*domainusecase.RegisterResult, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domainusecase.RegisterUserInput) *domainusecase.RegisterResult); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domainusecase.RegisterResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domainusecase.RegisterUserInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockUserUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input *domainusecase.RegisterUserInput
func (_e *MockUserUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockUserUsecase_Register_Call {
	return &MockUserUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockUserUsecase_Register_Call) Run(run func(ctx context.Context, input *domainusecase.RegisterUserInput)) *MockUserUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domainusecase.RegisterUserInput))
	})
	return _c
}

func (_c *MockUserUsecase_Register_Call) Return(_a0 *domainusecase.RegisterResult, _a1 error) *MockUserUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Register_Call) RunAndReturn(run func(context.Context, *domainusecase.RegisterUserInput) (*domainusecase.RegisterResult, error)) *MockUserUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	mock := &MockUserUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
