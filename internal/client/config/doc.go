// Package config loads the runtime settings of the Logix CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, a JSON file given via -c/-config, then command-line
// flags.
package config
