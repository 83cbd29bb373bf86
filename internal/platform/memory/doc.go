// Package memory provides in-process implementations of the repositories
// defined in the internal/store package. Each store guards its records with
// its own sync.RWMutex and hands out copies, so nothing outside the store can
// mutate stored state. Nothing is persisted across restarts.
package memory
