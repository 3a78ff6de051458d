package classify

import (
	"fmt"
	"strconv"
)

// SingleValue returns a router that buckets by exactly one extracted key, the
// common "group by field X" case. The extracted value becomes the sole bucket
// name for the item.
func SingleValue(extractor Extractor) (Router, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	return &singleValueRouter{extractor: extractor}, nil
}

type singleValueRouter struct {
	extractor Extractor
}

func (r *singleValueRouter) Route(item interface{}) ([]string, error) {
	value, err := r.extractor.Extract(item)
	if err != nil {
		return nil, err
	}
	return []string{Key(value)}, nil
}

// Multi returns a router that derives one bucket name per extractor, in
// order. Extractors yielding equal keys route the item into the same bucket
// once per occurrence; duplicates are deliberately not collapsed.
func Multi(extractors ...Extractor) (Router, error) {
	for _, e := range extractors {
		if e == nil {
			return nil, ErrExtractorRequired
		}
	}
	return &multiRouter{extractors: extractors}, nil
}

type multiRouter struct {
	extractors []Extractor
}

func (r *multiRouter) Route(item interface{}) ([]string, error) {
	names := make([]string, 0, len(r.extractors))
	for _, e := range r.extractors {
		value, err := e.Extract(item)
		if err != nil {
			return nil, err
		}
		names = append(names, Key(value))
	}
	return names, nil
}

// Key normalizes an extracted value to a bucket name. Equal values always
// produce equal names so bucket identity is stable across items.
func Key(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
