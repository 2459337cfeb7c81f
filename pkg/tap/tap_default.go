//go:build !darwin

package tap

import (
	"context"
	"time"

	"github.com/offlinefirst/dragscroll/pkg/scroll"
)

type platformCursor struct{}

func (platformCursor) Warp(scroll.Point)                    {}
func (platformCursor) SetSuppressionInterval(time.Duration) {}

// Run reports ErrUnsupported; event interception requires macOS.
func (t *Tap) Run(ctx context.Context) error {
	return ErrUnsupported
}
