package convert

import (
	"fmt"

	"github.com/npillmayer/edat/table"
)

// Converter converts raw value text to typed values and stores them in a table.
//
// Texts handed to a converter are slices of the parser's input. Converters
// must not keep references to them beyond the call.
type Converter interface {
	// ConvertValue converts text to a single value and stores it under name.
	ConvertValue(name string, text string, t *table.Table) error
	// ConvertArray converts all of texts to one array value and stores it
	// under name.
	ConvertArray(name string, texts []string, t *table.Table) error
}

// funcConverter converts scalars with one function and arrays with another.
type funcConverter[T any, A any] struct {
	one  func(string) (T, error)
	many func([]string) (A, error)
}

// Func creates a converter from a function for scalar values of type T.
// Arrays are converted element by element and stored as []T.
func Func[T any](fn func(string) (T, error)) Converter {
	return funcConverter[T, []T]{
		one:  fn,
		many: sliceOf(fn),
	}
}

// Pair creates a converter from a function for scalar values and a separate
// function for arrays. The array function decides on the array type A.
func Pair[T any, A any](one func(string) (T, error), many func([]string) (A, error)) Converter {
	return funcConverter[T, A]{one: one, many: many}
}

func sliceOf[T any](fn func(string) (T, error)) func([]string) ([]T, error) {
	return func(texts []string) ([]T, error) {
		arr := make([]T, 0, len(texts))
		for i, text := range texts {
			v, err := fn(text)
			if err != nil {
				return nil, fmt.Errorf("array element #%d: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil
	}
}

func (fc funcConverter[T, A]) ConvertValue(name string, text string, t *table.Table) error {
	v, err := fc.one(text)
	if err != nil {
		return err
	}
	table.Set(t, name, v)
	return nil
}

func (fc funcConverter[T, A]) ConvertArray(name string, texts []string, t *table.Table) error {
	if fc.many == nil {
		return fmt.Errorf("converter does not support arrays")
	}
	arr, err := fc.many(texts)
	if err != nil {
		return err
	}
	table.Set(t, name, arr)
	return nil
}
