// Package engine is the HCL-backed interpolation engine that resolvers are
// published into.
//
// It owns a function table keyed by HCL function name. Registry keys use dots
// as namespace separators ("hya.add") and are installed under the equivalent
// namespaced HCL name ("hya::add"), so a configuration can write
// `total = hya::add(1, 4)`.
package engine
