// Package service contains the application use cases for tasks and task logs.
// It orchestrates the stores defined in internal/store, publishes lifecycle
// events after every successful mutation, and translates store errors into
// service-level sentinels that the API layer maps to HTTP responses.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete store implementation.
package service
