// Package classify implements a runtime group-by/aggregate engine. Items are
// routed into named buckets by a single-pass routing function and accumulated
// by the aggregator created for each bucket. Because a classifier can itself
// be wrapped as an aggregator, groupings nest to arbitrary depth through
// composition alone.
package classify

// Unknown is the reserved bucket name used when routing derives an empty key.
// Items with no usable key always land in a real bucket; they are never
// dropped.
const Unknown = "Unknown"

// Aggregator accumulates items one at a time and exposes its current state.
type Aggregator interface {
	// Put incorporates one item into the accumulated state.
	Put(item interface{}) error

	// State returns the current aggregate view. Counting aggregators return
	// an int, summing aggregators a float64, and classifying aggregators a
	// map[string]interface{} realized recursively.
	State() interface{}
}

// Factory produces fresh, independent Aggregator instances on demand.
// Aggregators produced by the same factory share no mutable state.
type Factory interface {
	Create() Aggregator
}

// FactoryFunc is an adapter to allow an ordinary function to be used as a
// Factory.
type FactoryFunc func() Aggregator

// Create calls f.
func (f FactoryFunc) Create() Aggregator {
	return f()
}

// Extractor derives a value from an item. Extraction is a pure function of
// the item and must not mutate it.
type Extractor interface {
	Extract(item interface{}) (interface{}, error)
}

// ExtractorFunc is an adapter to allow an ordinary function to be used as an
// Extractor.
type ExtractorFunc func(item interface{}) (interface{}, error)

// Extract calls f.
func (f ExtractorFunc) Extract(item interface{}) (interface{}, error) {
	return f(item)
}

// Router determines the full ordered set of bucket names for an item in a
// single evaluation. The sequence may be empty and may contain duplicates;
// a duplicated name routes the item into the same bucket once per occurrence.
type Router interface {
	Route(item interface{}) ([]string, error)
}

// RouterFunc is an adapter to allow an ordinary function to be used as a
// Router.
type RouterFunc func(item interface{}) ([]string, error)

// Route calls f.
func (f RouterFunc) Route(item interface{}) ([]string, error) {
	return f(item)
}
