// Package model holds domain constants and value normalization shared by the
// store, services, and handlers.
package model

// Event type tags written by the services. The event_type column is free-form;
// these are the two tags the backend itself assigns.
const (
	EventTypeGeneral = "general" // explicit creation via the events API
	EventTypeTodo    = "todo"    // auto-created when a todo is marked done
)
