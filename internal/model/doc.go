package model

// Package model defines the domain values shared by the window and the worker:
// quality tiers, the immutable download request, worker lifecycle states and
// the events a worker emits. Values are plain data with explicit transitions.
