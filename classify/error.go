package classify

import (
	"errors"
	"fmt"
)

var (
	// ErrFactoryRequired is returned when constructing a classifier without
	// an aggregator factory.
	ErrFactoryRequired = errors.New("aggregator factory required")

	// ErrRouterRequired is returned when constructing a classifier without
	// a router.
	ErrRouterRequired = errors.New("router required")

	// ErrExtractorRequired is returned when constructing an extractor-based
	// component without an extractor.
	ErrExtractorRequired = errors.New("extractor required")
)

// ExtractionError is returned when an extractor cannot derive a value from an
// item. It aborts the routing of that item; no bucket is created for it.
type ExtractionError struct {
	Field string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("field not found: %s", e.Field)
}

// ValueError is returned when an extracted value is outside the domain an
// aggregator accumulates, such as a non-numeric value put into a sum.
type ValueError struct {
	Value interface{}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("non-numeric value: %v (%T)", e.Value, e.Value)
}
