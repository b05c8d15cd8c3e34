// Package embedded provides the reference library catalogs and their schemas
// bundled into the syslang binary. These are the default library; a directory
// of replacement catalogs can be supplied with --library.
package embedded

import "embed"

// Data contains the three reference catalogs (principles.json, patterns.json,
// compatibility.json) under data/.
//
//go:embed data
var Data embed.FS

// Schemas contains the companion schema documents used to validate the
// catalogs at load time, under schemas/.
//
//go:embed schemas
var Schemas embed.FS
