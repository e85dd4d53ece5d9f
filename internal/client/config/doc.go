// Package config loads the Tarot client runtime settings. Sources are
// applied in order: built-in defaults, then an optional JSON file
// (-c/-config), then command-line flags; later sources win.
package config
