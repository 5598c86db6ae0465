// Package model owns the co-simulation slave side of a driver: the packaged
// model bundle, its declared variable metadata, the protocol capability
// variants, the typed value representation, and the typed accessor that
// reads and writes a live model instance.
package model
