/*
Package db owns the storage schema and driver selection.

The schema is written once in portable SQL and created idempotently at
startup via CreateSchema. Open picks the SQL driver from configuration
(postgres or sqlite); everything above this package talks plain
database/sql with $N placeholders, which both drivers accept.

IsUniqueViolation normalizes the two drivers' unique-constraint errors
so callers can treat a lost insert race uniformly.
*/
package db
