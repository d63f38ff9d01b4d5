package convert

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Suite is a registry of converters, keyed by type tag. The zero value is an
// empty suite ready to use.
type Suite struct {
	converters *treemap.Map // tag → Converter, ordered by tag
}

// NewSuite creates an empty converter suite.
func NewSuite() *Suite {
	return &Suite{
		converters: treemap.NewWithStringComparator(),
	}
}

// Add registers converter c for type tag. A previous registration for the
// same tag is replaced.
func (s *Suite) Add(tag string, c Converter) {
	if c == nil {
		tracer().Errorf("refusing to register nil converter for %q", tag)
		return
	}
	if s.converters == nil {
		s.converters = treemap.NewWithStringComparator()
	}
	if _, found := s.converters.Get(tag); found {
		tracer().P("tag", tag).Infof("replacing converter")
	}
	s.converters.Put(tag, c)
}

// AddFunc registers a converter for scalars of type T (and arrays []T),
// given a conversion function.
func AddFunc[T any](s *Suite, tag string, fn func(string) (T, error)) {
	s.Add(tag, Func(fn))
}

// Resolve finds the converter for a type tag.
func (s *Suite) Resolve(tag string) (Converter, bool) {
	if s == nil || s.converters == nil {
		return nil, false
	}
	c, found := s.converters.Get(tag)
	if !found {
		return nil, false
	}
	return c.(Converter), true
}

// Tags returns all registered type tags in lexical order.
func (s *Suite) Tags() []string {
	if s == nil || s.converters == nil {
		return nil
	}
	keys := s.converters.Keys()
	tags := make([]string, len(keys))
	for i, k := range keys {
		tags[i] = k.(string)
	}
	return tags
}
