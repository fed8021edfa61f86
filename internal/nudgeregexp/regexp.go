package nudgeregexp

import "regexp"

var (
	// Dependencies captures the first closing brace that follows an
	// `implementation` declaration inside a `dependencies` block.
	Dependencies = regexp.MustCompile(`dependencies[\s\S]+?implementation[\s\S]+?(}+?)`)

	ResourcePath = regexp.MustCompile(`^[a-z]+(-[a-zA-Z0-9]+)*/[a-z0-9_]+(\.[a-z0-9]+)+$`)
	ClassName    = regexp.MustCompile(`^\.?[a-zA-Z_$][\w$]*(\.[a-zA-Z_$][\w$]*)*$`)

	SettingsFile = regexp.MustCompile(`(?i)\.(ya?ml|json|plist|hcl)$`)
)
