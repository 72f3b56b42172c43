// Package resources embeds the GLSL sources so the tutorials run from any
// working directory.
package resources

import "embed"

// Shaders holds every file under shaders/, addressed as "shaders/<name>".
//
//go:embed shaders
var Shaders embed.FS
