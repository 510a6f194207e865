// Package zone models geographic service areas.
//
// Boundaries use latitude as the first axis and longitude as the second, which
// is the reverse of GeoJSON. Stored geometry is kept in that order and is
// never converted; points are compared in the same frame.
package zone
