// Package value provides semantic wrappers over field values borrowed from record text.
//
// Every wrapper is a named string type whose underlying data is a substring of the source
// text. Converting a raw value into a wrapper never copies. Wrappers that carry structure
// expose decoding methods:
//
//   - Numbers (Size, Timestamp, Epoch, Release) decode with Parse; an empty value is 0.
//   - List[T] splits a multi-line value into items of type T.
//   - Dependency splits into a DependencyName and a DependencySpecification.
//   - Hex128 and Hex256 decode into fixed-size byte arrays.
//   - Version parses into a ParsedVersion with a total order.
//
// # Version ordering
//
// Upstream versions are compared component by component. Components are separated by any
// of '.', '_', '+' or '@'; each component is a numeric prefix followed by a suffix. Numeric
// prefixes compare by magnitude, so "01.02.3" equals "1.2.03" and "1.2.3" equals "1_2_3".
// When one version is a strict prefix of another, the longer one is greater:
//
//	a, _ := value.UpstreamVersion("1.1").Validate()
//	b, _ := value.UpstreamVersion("1.1.0").Validate()
//	a.Compare(b) // -1
package value
