// Package app wires the resolver registry, the resolver modules, the HCL
// engine and the configuration loader into one App, decoupled from any
// specific entrypoint.
package app
