// Package driver implements the co-simulation driver: the component that
// owns one model instance's lifecycle, variable registry, bus-topic
// bindings, and time-synchronized stepping loop.
//
// A driver is driven entirely by bus messages: orchestrator commands load,
// start and stop the instance, a recurring clock tick advances it, and
// subscribed input topics feed its mailbox. All of these may be delivered
// concurrently; one mutex per driver serializes every mutation of its state
// and every call into the model instance.
package driver
