package classify

// summer accumulates the numeric sum of values extracted from items.
type summer struct {
	extractor Extractor
	total     float64
}

func (s *summer) Put(item interface{}) error {
	value, err := s.extractor.Extract(item)
	if err != nil {
		return err
	}
	n, ok := numeric(value)
	if !ok {
		return &ValueError{Value: value}
	}
	s.total += n
	return nil
}

func (s *summer) State() interface{} {
	return s.total
}

// SumFactory returns a factory producing summing aggregators over the given
// extractor. Each aggregator's state is a float64 starting at zero; overflow
// is the caller's concern.
func SumFactory(extractor Extractor) (Factory, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	return FactoryFunc(func() Aggregator {
		return &summer{extractor: extractor}
	}), nil
}

// numeric coerces the numeric types items commonly carry, including every
// type JSON decoding produces.
func numeric(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
