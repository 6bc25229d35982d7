// Package hcl_adapter is the HCL implementation of config.Loader.
//
// A configuration is a set of top-level attributes spread over one or more
// .hcl files. Attributes may call any resolver installed in the engine and may
// refer to each other by name:
//
//	base    = "/srv/app"
//	data    = hya::to_path("${base}/data")
//	shards  = hya::braceexpand("shard{01..04}")
//	digest  = hya::sha256(base)
//
// Attributes are evaluated in dependency order.
package hcl_adapter
