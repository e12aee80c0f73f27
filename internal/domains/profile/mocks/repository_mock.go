// Code generated by MockGen. DO NOT EDIT.
// Source: ./repository.go
//
// Generated by this command:
//
//	mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	model "gipnoze/internal/domains/profile/model"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockContactProfile is a mock of ContactProfile interface.
type MockContactProfile struct {
	ctrl     *gomock.Controller
	recorder *MockContactProfileMockRecorder
}

// MockContactProfileMockRecorder is the mock recorder for MockContactProfile.
type MockContactProfileMockRecorder struct {
	mock *MockContactProfile
}

// NewMockContactProfile creates a new mock instance.
func NewMockContactProfile(ctrl *gomock.Controller) *MockContactProfile {
	mock := &MockContactProfile{ctrl: ctrl}
	mock.recorder = &MockContactProfileMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContactProfile) EXPECT() *MockContactProfileMockRecorder {
	return m.recorder
}

// GetByUserID mocks base method.
func (m *MockContactProfile) GetByUserID(ctx context.Context, userID int64) (model.ContactProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", ctx, userID)
	ret0, _ := ret[0].(model.ContactProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockContactProfileMockRecorder) GetByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockContactProfile)(nil).GetByUserID), ctx, userID)
}

// Upsert mocks base method.
func (m *MockContactProfile) Upsert(ctx context.Context, profile model.ContactProfile) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, profile)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockContactProfileMockRecorder) Upsert(ctx, profile any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockContactProfile)(nil).Upsert), ctx, profile)
}
