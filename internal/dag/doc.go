// Package dag is a small directed acyclic graph used to order configuration
// attributes so that every attribute is evaluated after the attributes it
// references.
package dag
