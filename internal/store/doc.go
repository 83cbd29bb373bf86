// Package store defines the repository contracts for tasks and task logs
// together with the errors every implementation reports. The contracts keep
// handlers and services independent of where records actually live.
package store
