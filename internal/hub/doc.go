// Package hub provides a generic, synchronous publish-subscribe registry.
//
// This package is internal to recordhub. A [Hub] carries exactly one event
// type; the record store owns one hub for before-write events and one for
// after-write events.
//
// The main components are:
//
//   - [Hub]: Listener registry with in-order, synchronous fan-out
//   - [Subscription]: Handle returned by [Hub.Subscribe] that removes one registration
//
// Listeners run on the publisher's goroutine. A panicking listener is not
// recovered; the panic reaches the caller of [Hub.Publish].
package hub
