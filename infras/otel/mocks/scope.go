package mocks

import "alora/infras/otel"

type scopeImpl struct{}

func (s *scopeImpl) End() {}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

func (s *scopeImpl) TraceError(_ error) {}

func (s *scopeImpl) TraceIfError(_ error) {}

// NewScope returns a scope that records nothing.
func NewScope() otel.Scope {
	return &scopeImpl{}
}
