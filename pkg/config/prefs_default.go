//go:build !darwin

package config

// readPreferences reports no preference domain outside macOS.
func readPreferences() (overrides, bool) {
	return overrides{}, false
}
