// Package domain contains the core entities of the Taskio API: tasks, the
// time logs recorded against them, and the identifier and duration rules
// shared by every layer above. It has no knowledge of storage or transport.
package domain
