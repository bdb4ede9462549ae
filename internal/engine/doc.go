// Package engine resolves which rule of a ruleset governs an instant and assembles
// the boundaries of zone segments.
//
// Rule activations are computed on plain clocks (time.Time values in time.UTC) read
// either as universal time or as the local wall clock of the zone; the frame is chosen
// by the reference of the point being searched.
package engine
