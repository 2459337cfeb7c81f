// Package tap installs the system-wide Quartz event tap that feeds the
// drag-to-scroll engine. Builds for other platforms compile but report
// ErrUnsupported.
package tap
