package template

import (
	"io/fs"
	"runtime"
)

// permissionBits are the mode bits copied from a source onto its output.
const permissionBits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// supportsPermissions reports whether the platform has POSIX permission bits.
var supportsPermissions = func() bool {
	return runtime.GOOS != "windows" && runtime.GOOS != "plan9"
}
