package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/strk/classifier/pipeline"
)

// Ensure that a single-level count definition builds and accumulates.
func TestDefinitionBuildCount(t *testing.T) {
	p, err := pipeline.New("by-region", pipeline.Definition{GroupBy: []string{"region"}})
	assert.NoError(t, err)

	assert.NoError(t, p.Put(map[string]interface{}{"region": "EU"}))
	assert.NoError(t, p.Put(map[string]interface{}{"region": "US"}))
	assert.NoError(t, p.Put(map[string]interface{}{"region": "EU"}))

	assert.Equal(t, map[string]interface{}{"EU": 2, "US": 1}, p.State())
}

// Ensure that a two-level sum definition nests and sums.
func TestDefinitionBuildNestedSum(t *testing.T) {
	p, err := pipeline.New("revenue", pipeline.Definition{
		GroupBy:   []string{"region", "status"},
		Aggregate: pipeline.Sum,
		Field:     "amount",
	})
	assert.NoError(t, err)

	assert.NoError(t, p.Put(map[string]interface{}{"region": "EU", "status": "ok", "amount": 10.0}))
	assert.NoError(t, p.Put(map[string]interface{}{"region": "EU", "status": "fail", "amount": 2.0}))
	assert.NoError(t, p.Put(map[string]interface{}{"region": "EU", "status": "ok", "amount": 5.0}))
	assert.NoError(t, p.Put(map[string]interface{}{"region": "US", "status": "ok", "amount": 1.0}))

	assert.Equal(t, map[string]interface{}{
		"EU": map[string]interface{}{"ok": 15.0, "fail": 2.0},
		"US": map[string]interface{}{"ok": 1.0},
	}, p.State())
}

// Ensure that three group-by fields nest three levels deep.
func TestDefinitionBuildThreeLevels(t *testing.T) {
	p, err := pipeline.New("deep", pipeline.Definition{
		GroupBy: []string{"tier", "region", "status"},
	})
	assert.NoError(t, err)

	assert.NoError(t, p.Put(map[string]interface{}{"tier": "free", "region": "EU", "status": "ok"}))
	assert.NoError(t, p.Put(map[string]interface{}{"tier": "free", "region": "EU", "status": "ok"}))

	assert.Equal(t, map[string]interface{}{
		"free": map[string]interface{}{
			"EU": map[string]interface{}{"ok": 2},
		},
	}, p.State())
}

// Ensure that invalid definitions are rejected.
func TestDefinitionValidate(t *testing.T) {
	err := (&pipeline.Definition{}).Validate()
	assert.Equal(t, pipeline.ErrGroupByRequired, err)

	err = (&pipeline.Definition{GroupBy: []string{""}}).Validate()
	assert.Equal(t, pipeline.ErrGroupByRequired, err)

	err = (&pipeline.Definition{GroupBy: []string{"region"}, Aggregate: pipeline.Sum}).Validate()
	assert.Equal(t, pipeline.ErrFieldRequired, err)

	err = (&pipeline.Definition{GroupBy: []string{"region"}, Aggregate: "avg"}).Validate()
	if assert.Error(t, err) {
		assert.Equal(t, "unknown aggregate: avg", err.Error())
	}
}
