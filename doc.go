// Package coerce normalizes loosely-typed values (configuration entries,
// user input, decoded JSON) into precise Go types. Every operation is a
// pure, stateless function offered in three strictness tiers: As* fails
// with an error wrapping ErrInvalidArgument, Try* reports absence with a
// nil result, To* never fails and falls back to a documented default.
//
// The DateTime and Duration families additionally read the ambient
// wall clock; everything else is referentially transparent.
package coerce
