// Package events provides lifecycle events for tasks and task logs.
//
// Services emit an Event after every successful mutation without knowing who
// consumes it. Handlers register with an EventEmitter; the default handler
// writes each event to the structured log as an audit record.
//
// The primary components are:
// - Event: a record of one change to one resource
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
