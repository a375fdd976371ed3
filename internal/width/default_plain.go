//go:build plaintext

package width

// Default is the measurer linked into this build.
var Default Measurer = Plain{}
