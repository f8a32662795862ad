// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the avl capabilities
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/pubavl/avl"
)

// MockAllocator is a mock of the avl.Allocator interface
type MockAllocator[K any, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockAllocatorMockRecorder[K, V]
}

// MockAllocatorMockRecorder is the mock recorder for MockAllocator
type MockAllocatorMockRecorder[K any, V any] struct {
	mock *MockAllocator[K, V]
}

// NewMockAllocator creates a new mock instance
func NewMockAllocator[K any, V any](ctrl *gomock.Controller) *MockAllocator[K, V] {
	mock := &MockAllocator[K, V]{ctrl: ctrl}
	mock.recorder = &MockAllocatorMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAllocator[K, V]) EXPECT() *MockAllocatorMockRecorder[K, V] {
	return m.recorder
}

// Allocate mocks base method
func (m *MockAllocator[K, V]) Allocate() *avl.Node[K, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allocate")
	ret0, _ := ret[0].(*avl.Node[K, V])
	return ret0
}

// Allocate indicates an expected call of Allocate
func (mr *MockAllocatorMockRecorder[K, V]) Allocate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allocate", reflect.TypeOf((*MockAllocator[K, V])(nil).Allocate))
}

// Free mocks base method
func (m *MockAllocator[K, V]) Free(node *avl.Node[K, V]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Free", node)
}

// Free indicates an expected call of Free
func (mr *MockAllocatorMockRecorder[K, V]) Free(node interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Free", reflect.TypeOf((*MockAllocator[K, V])(nil).Free), node)
}
