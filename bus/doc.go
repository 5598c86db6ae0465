// Package bus abstracts the publish/subscribe message bus the drivers
// communicate through. The wire encoding and the transport of a production
// bus are external concerns; this package defines the Transport contract,
// the message envelope codec, and an in-process transport used by tests and
// single-process runs.
package bus
