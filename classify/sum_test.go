package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/strk/classifier/classify"
)

// Ensure that a summing aggregator accumulates extracted values.
func TestSum(t *testing.T) {
	factory, err := classify.SumFactory(classify.Field("amount"))
	assert.NoError(t, err)

	a := factory.Create()
	assert.Equal(t, float64(0), a.State())

	assert.NoError(t, a.Put(map[string]interface{}{"amount": 10}))
	assert.NoError(t, a.Put(map[string]interface{}{"amount": 2.5}))
	assert.NoError(t, a.Put(map[string]interface{}{"amount": int64(7)}))

	assert.Equal(t, 19.5, a.State())
}

// Ensure that the sum is order-independent.
func TestSumCommutative(t *testing.T) {
	factory, err := classify.SumFactory(classify.Field("amount"))
	assert.NoError(t, err)

	amounts := []float64{1, 100, 4, 25, 0.5}
	forward := factory.Create()
	reverse := factory.Create()
	for i := range amounts {
		assert.NoError(t, forward.Put(map[string]interface{}{"amount": amounts[i]}))
		assert.NoError(t, reverse.Put(map[string]interface{}{"amount": amounts[len(amounts)-1-i]}))
	}
	assert.Equal(t, forward.State(), reverse.State())
}

// Ensure that missing fields and non-numeric values are errors.
func TestSumErrors(t *testing.T) {
	factory, err := classify.SumFactory(classify.Field("amount"))
	assert.NoError(t, err)

	a := factory.Create()
	err = a.Put(map[string]interface{}{"other": 1})
	if assert.Error(t, err) {
		assert.Equal(t, "field not found: amount", err.Error())
	}

	err = a.Put(map[string]interface{}{"amount": "ten"})
	if assert.Error(t, err) {
		assert.Equal(t, "non-numeric value: ten (string)", err.Error())
	}
	assert.Equal(t, float64(0), a.State())

	_, err = classify.SumFactory(nil)
	assert.Equal(t, classify.ErrExtractorRequired, err)
}
