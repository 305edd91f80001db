// Package domain holds the charging-station demand model: Berlin postal
// codes, population and boundary value objects, charging stations, the
// demand analysis aggregate and the domain events emitted while analysing.
// Nothing here performs I/O; repositories and publishers live elsewhere.
package domain
