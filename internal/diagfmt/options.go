package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps a path as given when it is relative or shorter than
	// 40 bytes, and shows only the base name of longer absolute paths.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// String returns the mode name used by source.File.FormatPath.
func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// ParsePathMode parses a rebuildlex.toml `path_mode` value. The empty
// string (key absent) reports false so callers can fall back to their own
// default instead of PathModeAuto specifically.
func ParsePathMode(s string) (PathMode, bool) {
	switch s {
	case "absolute":
		return PathModeAbsolute, true
	case "relative":
		return PathModeRelative, true
	case "basename":
		return PathModeBasename, true
	case "auto":
		return PathModeAuto, true
	default:
		return PathModeAuto, false
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	Width    uint8 // maximum line width before paragraph text is truncated, 0 = unlimited
}
