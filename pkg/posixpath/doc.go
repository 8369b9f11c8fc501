// Package posixpath implements a purely lexical, POSIX-style path type.
//
// Paths are always held internally in POSIX form: forward slashes, UTF-8
// passed through as raw bytes. Windows drive letters are encoded using the
// network-root scheme, so `C:\foo` is represented as `//c:/foo`; network
// shares keep their natural `//host/share` form. Translation to and from
// the native Windows representation happens only at the boundary via
// ToWin32 and FromWin32.
//
// Everything here is a pure computation over the path string. There is no
// filesystem access of any kind: no stat, no symlink resolution, no
// existence checks. Normalization is lexical only, following the
// std::filesystem lexically_normal algorithm, plus a stricter "full"
// variant that also drops trailing separators and normalizes "." to "".
//
// A Path carries two speculative caches, "normalized" and "absolute".
// They are only ever true when the property has been proven; false means
// unknown. Mutating operations clear whichever flags they can no longer
// guarantee.
package posixpath
