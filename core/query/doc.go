// Package query defines the immutable query value handed to asset providers.
//
// A Query bundles a category, a list of filters, a sort mode and the recursion
// flag. Its canonical representation is snapshotted eagerly at construction
// and defines equality and cache identity - two queries built from different
// filter instances with the same configuration are equal.
package query
