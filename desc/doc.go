// Package desc parses and queries flat package description records.
//
// A desc record is the per-package metadata file found in pacman sync databases:
//
//	%NAME%
//	gnome-shell
//
//	%VERSION%
//	1:46.2-1
//
//	%MAKEDEPENDS%
//	meson
//	sassc
//
// Every value returned by this package is a substring of the record text; nothing is copied.
//
// # Query strategies
//
// Three interchangeable Querier implementations trade setup cost for lookup cost:
//
//   - Parsed scans the whole record once in Parse and answers every lookup in O(1).
//   - Forgetful has no state and rescans the record on every lookup. Use it when only one
//     or two fields are read from a record that is used once.
//   - Memo scans lazily, caching every field it passes, so the whole record is scanned at
//     most once no matter how many lookups are made or in which order.
//
// All three return identical values for the same record. Parsed and Forgetful are safe for
// concurrent readers. Memo mutates its cursor on lookup; wrap it in a SyncMemo to share it
// between goroutines.
//
// # Typed access
//
// Access wraps any Querier with one typed getter per field:
//
//	parsed, err := desc.Parse(text)
//	if err != nil {
//	    return err
//	}
//	name, _ := desc.Access(parsed).Name()
//	for dep := range deps.All() { ... }
//
// # Issues
//
// Parse stops at the first structural problem and skips unknown fields. ParseWithIssues
// reports every anomaly to a caller-supplied IssueHandler, which decides whether to continue
// or abort. The partially parsed record is returned in either case.
package desc
