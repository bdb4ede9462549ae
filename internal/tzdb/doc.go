// Package tzdb holds an assembled zone database and converts instants between
// universal time and the local time of its zones.
//
// A Database is immutable once built. Zones may be used from any number of
// goroutines; the only shared mutable state is each zone's transition cache, which
// is guarded by its own mutex.
package tzdb
