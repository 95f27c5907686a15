package usecase

import (
	context "context"

	entity "directory/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// MockIdentityLoader is an autogenerated mock type for the IdentityLoader type
type MockIdentityLoader struct {
	mock.Mock
}

type MockIdentityLoader_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityLoader) EXPECT() *MockIdentityLoader_Expecter {
	return &MockIdentityLoader_Expecter{mock: &_m.Mock}
}

// LoadByID provides a mock function with given fields: ctx, id
func (_m *MockIdentityLoader) LoadByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for LoadByID")
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

// MockIdentityLoader_LoadByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadByID'
type MockIdentityLoader_LoadByID_Call struct {
	*mock.Call
}

// LoadByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockIdentityLoader_Expecter) LoadByID(ctx interface{}, id interface{}) *MockIdentityLoader_LoadByID_Call {
	return &MockIdentityLoader_LoadByID_Call{Call: _e.mock.On("LoadByID", ctx, id)}
}

func (_c *MockIdentityLoader_LoadByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockIdentityLoader_LoadByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockIdentityLoader_LoadByID_Call) Return(_a0 *entity.User, _a1 error) *MockIdentityLoader_LoadByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityLoader_LoadByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockIdentityLoader_LoadByID_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentityLoader creates a new instance of MockIdentityLoader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityLoader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityLoader {
	mock := &MockIdentityLoader{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
