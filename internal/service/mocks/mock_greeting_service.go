package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Hello() string {
	return m.Called().String(0)
}

func (m *MockGreetingService) HBNB() string {
	return m.Called().String(0)
}

func (m *MockGreetingService) C(text string) string {
	return m.Called(text).String(0)
}

func (m *MockGreetingService) Python(text string) string {
	return m.Called(text).String(0)
}

func (m *MockGreetingService) Number(n string) string {
	return m.Called(n).String(0)
}

func (m *MockGreetingService) Parity(n string) string {
	return m.Called(n).String(0)
}
