// Package field tokenizes single lines of the two pkgtext record formats into raw field tokens.
//
// # Flat records
//
// A flat ("desc") record marks each field with a line of the form %NAME%:
//
//	%NAME%
//	gnome-shell
//
// ParseDesc accepts the marker line (already trimmed) and returns the name between the
// percent signs. The name must be non-empty ASCII uppercase.
//
// # Sectioned records
//
// A sectioned (".SRCINFO") record uses "name[_arch] = value" lines:
//
//	depends_x86_64 = glibc
//
// ParseSrcinfo splits such a line into a Raw token and the value.
//
// Both tokenizers are pure functions, return substrings of their input and never allocate
// on success.
package field
