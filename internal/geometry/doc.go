// Package geometry models coordinate systems and the ordered transforms that
// place a component in one.
//
// A Transform is a sequence of operations (Affine, Translation, Scale)
// applied first to last. Operation order is significant and is preserved
// exactly through JSON, as are float64 values: encoding/json writes the
// shortest representation that parses back to the same bit pattern.
//
//	t, err := geometry.Compose(3,
//	    geometry.Affine{Matrix: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
//	    geometry.Translation{Vector: []float64{0.1, 0, 0}},
//	)
//	p, err := t.Apply([]float64{1, 2, 3})
package geometry
