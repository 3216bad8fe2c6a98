// Package browser exposes the asset catalog over HTTP.
//
// It is the consumer boundary of the engine: clients list categories, run
// queries with the full filter catalogue, fetch asset and asset data details
// and resolve file IDs to materialized local paths.
//
// # Endpoints
//
//   - GET  /catalog/categories: child categories of a parent.
//   - POST /catalog/query: run a query, body is a QueryRequest.
//   - GET  /catalog/assets/*: one asset with its data record IDs.
//   - GET  /catalog/asset-data/*: one asset data record.
//   - GET  /catalog/files?id=...: materialize a file.
//   - GET  /catalog/knowledge: known tags/parameters for filter interfaces.
//
// The feature follows the Service/Handler split: the Service runs operations
// against the cached provider multiplexer, the Handler translates HTTP.
package browser
