// Package power implements the OS power-plan registry: enumerating
// available plans, reading the active one, and requesting activation.
// Windows talks to powrprof.dll; Linux uses ACPI platform profiles.
// Platforms without a native store fall back to the in-memory mock.
package power
