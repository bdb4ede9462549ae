// Package domain contains the core model of the time zone database.
//
// The domain is source-agnostic: it does not read files, embed data or know about the
// CLI. Parsers in infra map raw tz records into these types and the engine fills in the
// derived zone boundaries.
package domain
