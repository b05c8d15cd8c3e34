// Command syslang loads, validates, and analyzes syslang system model
// documents against the bundled reference library of principles.
package main

// version is the release version, overridable at build time via -ldflags.
var version = "1.0.0"

func main() {
	Execute()
}
