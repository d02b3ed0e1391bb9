// Copyright (c) 2025 SciGo Region Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package region implements integer region calculus for block-structured
// simulation data: points, half-open boxes and regions (disjoint unions of
// boxes) in 0 to 4 dimensions.
//
// The dimension of a Point, Box or Region is part of its type:
//
//	a := region.NewBox(region.NewPoint[int64, region.D3](0, 0, 0), region.NewPoint[int64, region.D3](4, 4, 4))
//	b := region.NewBox(region.NewPoint[int64, region.D3](1, 1, 1), region.NewPoint[int64, region.D3](2, 2, 2))
//	pieces := a.Difference(b) // disjoint boxes covering 63 cells
//
// When the dimension is only known at run time (for example from a
// manifold's declared dimensionality), the DPoint, DBox and DRegion
// handles wrap the static types behind a dimension chosen by value:
//
//	box, err := region.MakeDBox[int64](dim, lower, upper)
//
// # Coordinate order
//
// Dimension 0 varies fastest whenever a box is laid out linearly
// (Box.Index, the linear and hyperslab packages). No other part of the
// module reorders coordinates.
//
// # Invariants
//
// Every Region holds pairwise disjoint, non-empty boxes. Region.Invariant
// checks this in O(n^2). Building with the regiondebug tag additionally
// asserts algebraic post-conditions after every operation.
//
// # Thread Safety
//
// Point, Box and Region are immutable values and safe for concurrent use.
//
// # Testing
//
// Run the suite with the post-condition assertions compiled in:
//
//	go test -tags regiondebug ./...
//
// A plain go test ./... exercises the same code with the assertions
// compiled out. Both runs must pass.
package region
