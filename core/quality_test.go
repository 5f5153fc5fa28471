package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/apportion/core"
)

// TestQuality_Cmp checks ordering within and across the two kinds.
func TestQuality_Cmp(t *testing.T) {
	assert.Equal(t, 0, core.Ratio(10, 2).Cmp(core.Ratio(5, 1)))
	assert.Equal(t, 1, core.Integer(9).Cmp(core.Integer(4)))
	assert.Equal(t, -1, core.Integer(4).Cmp(core.Integer(9)))

	// integers order like n/1 against rationals
	assert.Equal(t, 0, core.Integer(5).Cmp(core.Ratio(10, 2)))
	assert.Equal(t, -1, core.Integer(4).Cmp(core.Ratio(9, 2)))
	assert.Equal(t, 1, core.Ratio(11, 2).Cmp(core.Integer(5)))
}

func TestQuality_Kind(t *testing.T) {
	assert.Equal(t, core.RationalQuality, core.Ratio(1, 2).Kind())
	assert.Equal(t, core.IntegerQuality, core.Integer(3).Kind())
	assert.Equal(t, core.Frac(3, 1), core.Integer(3).Fraction())
	assert.Equal(t, "1/2", core.Ratio(1, 2).String())
}
