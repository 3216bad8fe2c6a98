// Package geo implements the Mercator-style projection of geographic
// coordinates onto the fixed 16x16 map tile grid used by location filtering.
//
// Both component projections are pure functions of a single scalar; because
// assets carry rounded coordinates that repeat a lot, the projection memoizes
// recent inputs in bounded LRU caches.
package geo
