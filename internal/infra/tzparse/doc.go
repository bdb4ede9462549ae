// Package tzparse reads the text formats of the tz database: Rule, Zone and Link
// records, and the tab separated country, zone and Windows mapping tables.
package tzparse
