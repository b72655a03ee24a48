// Package inventory provides the types and operations of a single-process
// inventory ledger: typed product records, stock adjustments, search,
// valuation, and persistence to a flat file.
//
// The core functionalities include:
//   - Product Variants: a closed set of product kinds (Electronics, Grocery,
//     Clothing) sharing an id, a name, a unit price, and a stock count that
//     never goes negative.
//   - Inventory Store: an id-keyed collection with exclusive ownership of its
//     products, supporting add/remove, sell/restock, case-insensitive search,
//     aggregate valuation, and an expiry sweep for groceries.
//   - Data Persistence: encoding and decoding the whole collection to and
//     from a human-readable, version-controllable JSONL file of tagged
//     records, plus extraction of such records from supplier catalog exports.
//
// The package never performs interactive I/O and never logs: every failure is
// returned as a typed error for the caller to report. It serves as the
// foundational logic for the `ics` command-line tool.
package inventory
