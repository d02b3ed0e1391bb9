//go:build regiondebug

package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugChecksEnabled(t *testing.T) {
	require.True(t, debugChecks)

	overlapping := Region[int64, D3]{boxes: []b3{box3(0, 0, 0, 2, 2, 2), box3(1, 1, 1, 3, 3, 3)}}
	assert.PanicsWithValue(t,
		"region: union: "+overlapping.Invariant().Error(),
		func() { assertInvariant(overlapping, "union") })

	assert.NotPanics(t, func() { assertInvariant(RegionFromBox(box3(0, 0, 0, 2, 2, 2)), "union") })
}

func TestCheckDifferenceRejectsBadPieces(t *testing.T) {
	a := box3(0, 0, 0, 4, 4, 4)
	hole := box3(1, 1, 1, 2, 2, 2)

	assert.NotPanics(t, func() { checkDifference(a, hole, a.Difference(hole)) })
	assert.Panics(t, func() { checkDifference(a, hole, []b3{a}) }, "piece overlaps the subtrahend")
	assert.Panics(t, func() { checkDifference(a, hole, a.Difference(hole)[1:]) }, "pieces miss points")

	pieces := a.Difference(hole)
	assert.Panics(t, func() { checkDifference(a, hole, append(pieces, pieces[0])) }, "pieces overlap")
}
