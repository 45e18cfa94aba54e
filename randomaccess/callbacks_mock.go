// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package randomaccess: this file is written by hand in the shape mockgen
// would generate for the MacQueries interface (see
// profile/blockprofile/context_mock.go in the teacher repo for the pattern),
// since the real mockgen tool isn't run as part of building this module.
package randomaccess

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockMacQueries is a mock of the MacQueries interface.
type MockMacQueries struct {
	ctrl     *gomock.Controller
	recorder *MockMacQueriesMockRecorder
}

// MockMacQueriesMockRecorder is the mock recorder for MockMacQueries.
type MockMacQueriesMockRecorder struct {
	mock *MockMacQueries
}

// NewMockMacQueries creates a new mock instance.
func NewMockMacQueries(ctrl *gomock.Controller) *MockMacQueries {
	mock := &MockMacQueries{ctrl: ctrl}
	mock.recorder = &MockMacQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMacQueries) EXPECT() *MockMacQueriesMockRecorder {
	return m.recorder
}

// IsDamaAvailable mocks base method.
func (m *MockMacQueries) IsDamaAvailable() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsDamaAvailable")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsDamaAvailable indicates an expected call of IsDamaAvailable.
func (mr *MockMacQueriesMockRecorder) IsDamaAvailable() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsDamaAvailable", reflect.TypeOf((*MockMacQueries)(nil).IsDamaAvailable))
}

// AreBuffersEmpty mocks base method.
func (m *MockMacQueries) AreBuffersEmpty() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AreBuffersEmpty")
	ret0, _ := ret[0].(bool)
	return ret0
}

// AreBuffersEmpty indicates an expected call of AreBuffersEmpty.
func (mr *MockMacQueriesMockRecorder) AreBuffersEmpty() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AreBuffersEmpty", reflect.TypeOf((*MockMacQueries)(nil).AreBuffersEmpty))
}

// NumOfCandidatePackets mocks base method.
func (m *MockMacQueries) NumOfCandidatePackets(payloadBytes uint32) uint32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NumOfCandidatePackets", payloadBytes)
	ret0, _ := ret[0].(uint32)
	return ret0
}

// NumOfCandidatePackets indicates an expected call of NumOfCandidatePackets.
func (mr *MockMacQueriesMockRecorder) NumOfCandidatePackets(payloadBytes any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NumOfCandidatePackets", reflect.TypeOf((*MockMacQueries)(nil).NumOfCandidatePackets), payloadBytes)
}
