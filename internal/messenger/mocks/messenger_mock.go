// Code generated by MockGen. DO NOT EDIT.
// Source: ./messenger.go
//
// Generated by this command:
//
//	mockgen -source=./messenger.go -destination=./mocks/messenger_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	messenger "gipnoze/internal/messenger"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockMessenger is a mock of Messenger interface.
type MockMessenger struct {
	ctrl     *gomock.Controller
	recorder *MockMessengerMockRecorder
}

// MockMessengerMockRecorder is the mock recorder for MockMessenger.
type MockMessengerMockRecorder struct {
	mock *MockMessenger
}

// NewMockMessenger creates a new mock instance.
func NewMockMessenger(ctrl *gomock.Controller) *MockMessenger {
	mock := &MockMessenger{ctrl: ctrl}
	mock.recorder = &MockMessengerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMessenger) EXPECT() *MockMessengerMockRecorder {
	return m.recorder
}

// EditText mocks base method.
func (m *MockMessenger) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EditText", ctx, chatID, messageID, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// EditText indicates an expected call of EditText.
func (mr *MockMessengerMockRecorder) EditText(ctx, chatID, messageID, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EditText", reflect.TypeOf((*MockMessenger)(nil).EditText), ctx, chatID, messageID, text)
}

// SendInline mocks base method.
func (m *MockMessenger) SendInline(ctx context.Context, chatID int64, text string, rows [][]messenger.Button) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendInline", ctx, chatID, text, rows)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendInline indicates an expected call of SendInline.
func (mr *MockMessengerMockRecorder) SendInline(ctx, chatID, text, rows any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendInline", reflect.TypeOf((*MockMessenger)(nil).SendInline), ctx, chatID, text, rows)
}

// SendMenu mocks base method.
func (m *MockMessenger) SendMenu(ctx context.Context, chatID int64, text string, rows [][]string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMenu", ctx, chatID, text, rows)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMenu indicates an expected call of SendMenu.
func (mr *MockMessengerMockRecorder) SendMenu(ctx, chatID, text, rows any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMenu", reflect.TypeOf((*MockMessenger)(nil).SendMenu), ctx, chatID, text, rows)
}

// SendText mocks base method.
func (m *MockMessenger) SendText(ctx context.Context, chatID int64, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendText", ctx, chatID, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendText indicates an expected call of SendText.
func (mr *MockMessengerMockRecorder) SendText(ctx, chatID, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendText", reflect.TypeOf((*MockMessenger)(nil).SendText), ctx, chatID, text)
}
