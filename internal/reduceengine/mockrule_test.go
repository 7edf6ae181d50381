package reduceengine_test

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/dagforge/reduce/internal/dagnode"
)

// MockRule is a hand-written gomock double for dagnode.Rule, in the shape
// mockgen would generate, kept by hand since this module has only the one
// mockable interface worth exercising this way.
type MockRule struct {
	ctrl     *gomock.Controller
	recorder *MockRuleMockRecorder
}

type MockRuleMockRecorder struct {
	mock *MockRule
}

func NewMockRule(ctrl *gomock.Controller) *MockRule {
	m := &MockRule{ctrl: ctrl}
	m.recorder = &MockRuleMockRecorder{mock: m}
	return m
}

func (m *MockRule) EXPECT() *MockRuleMockRecorder {
	return m.recorder
}

func (m *MockRule) ImportanceLevel() dagnode.Importance {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ImportanceLevel")
	level, _ := ret[0].(dagnode.Importance)
	return level
}

func (mr *MockRuleMockRecorder) ImportanceLevel() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ImportanceLevel", reflect.TypeOf((*MockRule)(nil).ImportanceLevel))
}

func (m *MockRule) Apply(target dagnode.Node, ctx dagnode.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", target, ctx)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockRuleMockRecorder) Apply(target, ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockRule)(nil).Apply), target, ctx)
}
