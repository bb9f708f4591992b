// Package wizard sequences registry lookups, destination checks, build script
// edits and tree instantiation into the two user-facing actions: creating an
// extension and adding a module to an existing project.
//
// Requests run in order and fail fast. Nothing is rolled back: when the Nth
// module fails, the modules before it stay on disk.
package wizard
