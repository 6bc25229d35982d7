// Package config defines the evaluated configuration Document and the Loader
// interface that produces it.
//
// A Document is format-agnostic: it holds the final value of every top-level
// attribute after all resolver calls and cross-references were evaluated.
// The HCL implementation of Loader lives in package hcl_adapter.
package config
