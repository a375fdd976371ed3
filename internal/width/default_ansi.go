//go:build !plaintext

package width

// Default is the measurer linked into this build. Build with the
// plaintext tag to count code points instead.
var Default Measurer = ANSI{}
