// Package pipeline turns declarative aggregation definitions into live
// classifiers. A definition names the fields to group by, outermost first,
// and the terminal aggregation applied inside the innermost grouping.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/strk/classifier/classify"
)

const (
	// Count aggregates the number of items per innermost bucket.
	Count = "count"

	// Sum aggregates the numeric sum of a field per innermost bucket.
	Sum = "sum"
)

var (
	// ErrGroupByRequired is returned when a definition has no group-by
	// fields.
	ErrGroupByRequired = errors.New("at least one group-by field required")

	// ErrFieldRequired is returned when a sum definition does not name the
	// field to sum.
	ErrFieldRequired = errors.New("sum field required")
)

// Definition describes a multi-level aggregation.
type Definition struct {
	GroupBy   []string `json:"group_by"`
	Aggregate string   `json:"aggregate,omitempty"`
	Field     string   `json:"field,omitempty"`
}

// Validate checks the definition's shape. An empty aggregate defaults to
// count.
func (d *Definition) Validate() error {
	if len(d.GroupBy) == 0 {
		return ErrGroupByRequired
	}
	for _, field := range d.GroupBy {
		if field == "" {
			return ErrGroupByRequired
		}
	}
	switch d.Aggregate {
	case "", Count:
	case Sum:
		if d.Field == "" {
			return ErrFieldRequired
		}
	default:
		return fmt.Errorf("unknown aggregate: %s", d.Aggregate)
	}
	return nil
}

// Build constructs the classifier tree the definition describes: the terminal
// aggregation wrapped right-to-left in one classifying layer per group-by
// field beyond the first.
func (d *Definition) Build() (*classify.Classifier, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	factory, err := d.terminalFactory()
	if err != nil {
		return nil, err
	}

	// Innermost group-by first; each wrap adds one nesting level.
	for i := len(d.GroupBy) - 1; i > 0; i-- {
		router, err := classify.SingleValue(classify.Field(d.GroupBy[i]))
		if err != nil {
			return nil, err
		}
		factory, err = classify.ClassifyingFactory(router, factory)
		if err != nil {
			return nil, err
		}
	}

	return classify.NewSingleValueClassifier(classify.Field(d.GroupBy[0]), factory)
}

func (d *Definition) terminalFactory() (classify.Factory, error) {
	if d.Aggregate == Sum {
		return classify.SumFactory(classify.Field(d.Field))
	}
	return classify.CountFactory(), nil
}

// Pipeline couples a named definition with its live classifier.
type Pipeline struct {
	Name       string
	Definition Definition

	classifier *classify.Classifier
}

// New creates a pipeline with an empty classifier built from the definition.
func New(name string, definition Definition) (*Pipeline, error) {
	classifier, err := definition.Build()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Name:       name,
		Definition: definition,
		classifier: classifier,
	}, nil
}

// Put routes one item through the pipeline's classifier.
func (p *Pipeline) Put(item interface{}) error {
	return p.classifier.Put(item)
}

// State returns the realized aggregation tree.
func (p *Pipeline) State() map[string]interface{} {
	return p.classifier.State()
}
