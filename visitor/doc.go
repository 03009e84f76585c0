// Package visitor offers generic callback iteration over the container
// shapes the coercion families accept: structs (reflection backed, with
// unexported fields and tag resolved names), maps, and slices. It is the
// draining engine behind the slice, map and record coercions.
package visitor
