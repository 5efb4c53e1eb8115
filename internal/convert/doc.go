// Package convert moves API record batches from one analysis phase to the
// next with per-item fault isolation.
//
// Three entry points share one failure policy:
//   - Apis dispatches each record by kind to one of four conversion rules,
//     copying pass-through kinds verbatim.
//   - ItemApis applies one uniform rule to whole records, attributing any
//     failure to the item itself.
//   - Report runs a side-effecting operation whose failure must be
//     documented the same way even though it produces no records.
//
// A rule failure never aborts the batch. It is downgraded to exactly one
// diagnostic line and, when the error carries attribution, exactly one
// ignored-item record standing in the failed item's position.
package convert
