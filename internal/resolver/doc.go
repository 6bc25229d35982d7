// Package resolver defines what a "resolver" is in Go terms and compiles
// resolvers into go-cty functions that HCL can call.
//
// A resolver may be given as:
//
//   - a function.Function, used as-is;
//   - a *function.Spec, wrapped with function.New;
//   - a plain Go func whose parameters and results can be mapped onto cty
//     types (see Compile).
//
// Plain funcs are the usual form, since they keep resolver code free of cty
// plumbing:
//
//	func CeilDiv(dividend, divisor *big.Float) (*big.Float, error)
//	func SHA256(v cty.Value) (string, error)
//	func Add(first cty.Value, rest ...cty.Value) (cty.Value, error)
package resolver
