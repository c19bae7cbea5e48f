// Package terrain generates, holds and renders square height fields
// ("digital elevation maps") with heights in [MinHeight, MaxHeight].
//
// Generation uses midpoint displacement on a (2^n + 1)-sized square: the four
// corners are seeded around 50, then each square's centre and edge midpoints
// are set to the average of their corners plus a jitter that halves every
// step. All randomness comes from the caller's *rand.Rand, so a fixed seed
// reproduces the same field.
//
// A route.Path can be plotted onto a clone of the field with Traverse; plotted
// cells hold Traversed and render as "()".
package terrain
