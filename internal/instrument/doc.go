// Package instrument provides the Instrument aggregate: an identified,
// dated set of components described in one coordinate system.
//
// An Instrument is validated in full when it is built, by New or by
// Builder.Build, and cannot be changed afterwards. Getters return copies.
// To change an instrument, seed a Builder with From, edit it and build a
// new one.
//
//	inst, err := instrument.NewBuilder("Nikon2P.1").
//	    ModificationDate(instrument.MustDate(2015, time.January, 1)).
//	    CoordinateSystem(geometry.BregmaARI()).
//	    Modalities(vocab.ModalityPOPHYS, vocab.ModalityBehaviorVideos).
//	    Add(laser, monitor).
//	    Build()
//
// Validation failures are reported as *ValidationError, which matches
// ErrInstrumentValidation and unwraps to the underlying cause.
package instrument
