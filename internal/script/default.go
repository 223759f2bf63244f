package script

import _ "embed"

// DefaultSource is the built-in agent used when no script is supplied.
//
//go:embed default.lua
var DefaultSource string
