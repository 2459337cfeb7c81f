//go:build !darwin

package permissions

// platformTrusted reports trust on platforms without an accessibility gate.
func platformTrusted(bool) bool { return true }

func observeAccessibility(func()) func() { return func() {} }
