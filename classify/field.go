package classify

// Field returns an extractor that reads the named field from items shaped as
// map[string]interface{}. Items of any other shape, and items missing the
// field entirely, yield an ExtractionError. A field that is present but holds
// a nil or empty value extracts successfully; routing then normalizes the
// empty key to the Unknown bucket.
func Field(name string) Extractor {
	return &fieldExtractor{name: name}
}

type fieldExtractor struct {
	name string
}

func (e *fieldExtractor) Extract(item interface{}) (interface{}, error) {
	m, ok := item.(map[string]interface{})
	if !ok {
		return nil, &ExtractionError{Field: e.name}
	}
	value, ok := m[e.name]
	if !ok {
		return nil, &ExtractionError{Field: e.name}
	}
	return value, nil
}
