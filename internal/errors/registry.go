package errors

import "sort"

// Template defines a registered error.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Configuration (E100-E199)

	"E101": {
		Category:   CategoryConfig,
		Message:    "Cannot read configuration file",
		Suggestion: "Check the --config path, or remove the flag to use defaults.",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Malformed configuration file",
		Suggestion: "landing.json must be a JSON object; check for trailing commas.",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Fix the listed fields in landing.json or the LANDING_* environment.",
	},
	"E104": {
		Category:   CategoryConfig,
		Message:    "Cannot decode configuration",
		Suggestion: "Durations take units (\"30s\"); numbers must not be quoted.",
	},

	// Assets (E200-E299)

	"E201": {
		Category:   CategoryAsset,
		Message:    "Asset directory not found",
		Suggestion: "Set assets.dir to the directory holding logo/ and happy-baby-aisense.png.",
	},
	"E202": {
		Category:   CategoryAsset,
		Message:    "S3 asset source misconfigured",
		Suggestion: "Set assets.s3.bucket and assets.s3.region.",
	},
	"E203": {
		Category:   CategoryAsset,
		Message:    "Asset source unavailable",
		Suggestion: "Check network access and credentials for the asset source.",
	},

	// Transport (E300-E399)

	"E301": {
		Category:   CategoryTransport,
		Message:    "Cannot listen on address",
		Suggestion: "Another process may hold the port; pick a different server.port.",
	},
	"E302": {
		Category:   CategoryTransport,
		Message:    "Shutdown timed out",
		Suggestion: "Raise server.shutdown_timeout to let sessions drain.",
	},

	// CLI (E400-E499)

	"E401": {
		Category:   CategoryCLI,
		Message:    "Cannot write rendered page",
		Suggestion: "Check that the output directory exists and is writable.",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Page render failed",
	},
}

// Codes returns all registered codes in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template for a code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
