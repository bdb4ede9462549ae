// Package tzsource locates tz record files and turns them into a domain.Dataset.
//
// Two sources exist: the excerpt of the tz database compiled into the binary, and a
// directory on disk laid out like a tzdata release (TZDIR). Both are read through
// afero, so tests run against an in-memory filesystem.
package tzsource
