package classify

// classifying makes a classifier usable as an aggregator, so a bucket of an
// outer classifier can itself be a nested grouping.
type classifying struct {
	classifier *Classifier
}

func (a *classifying) Put(item interface{}) error {
	return a.classifier.Put(item)
}

func (a *classifying) State() interface{} {
	return a.classifier.State()
}

// ClassifyingFactory returns a factory whose aggregators are fresh, empty
// classifiers built from the given configuration. Every Create constructs a
// new classifier sharing only the router and inner factory references, never
// buckets or accumulated state, so sibling branches of an outer grouping
// stay independent.
func ClassifyingFactory(router Router, factory Factory) (Factory, error) {
	if router == nil {
		return nil, ErrRouterRequired
	}
	if factory == nil {
		return nil, ErrFactoryRequired
	}
	return FactoryFunc(func() Aggregator {
		classifier, _ := NewClassifier(router, factory)
		return &classifying{classifier: classifier}
	}), nil
}
