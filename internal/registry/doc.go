// Package registry provides the central "glue" between resolver code and the
// configuration engine.
//
// The Registry stores mappings between the string keys used in configuration
// files (e.g., "hya.add") and the compiled go-cty functions that implement
// them. Resolver modules populate a registry during application startup; the
// publisher then installs its entries into an HCL evaluation context.
//
// Keys are unique. Registering an existing key fails with a DuplicateKeyError
// unless the ExistOK option is given, which makes intentional overrides (for
// example in tests) explicit while accidental key reuse is caught early.
package registry
