// Package index implements the index contract behind asset providers.
//
// An index describes the full content of one asset pack: its category tree,
// assets, asset data records and the files they reference. The package offers
// three backends over the same contract.
//
// # Providers
//
//   - LocalProvider: index JSON and files from a local directory.
//   - RemoteProvider: index JSON from object storage, files downloaded into
//     a cache directory on first materialization.
//   - DBProvider: index rows assembled from database tables.
//
// # Loading
//
// An index is validated up front (ParseIndex/Validate), a malformed index
// fails loading with a ValidationError naming the offending key. Loading
// builds an immutable snapshot of catalog values; refreshing a provider
// builds a new snapshot and swaps it wholesale, so in-flight reads keep a
// consistent view.
package index
