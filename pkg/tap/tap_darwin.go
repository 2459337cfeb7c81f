//go:build darwin

package tap

/*
#cgo darwin LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdbool.h>
#include <stdint.h>

extern CGEventRef goHandleEvent(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo);

enum { tapOK = 0, tapCreateFailed = 1, tapSourceFailed = 2 };

static int startEventTap(uintptr_t handle, CGEventMask mask, CFMachPortRef *tapOut, CFRunLoopSourceRef *sourceOut) {
        CFMachPortRef tap = CGEventTapCreate(kCGSessionEventTap,
                                             kCGHeadInsertEventTap,
                                             kCGEventTapOptionDefault,
                                             mask,
                                             goHandleEvent,
                                             (void *)handle);
        if (tap == NULL) {
                return tapCreateFailed;
        }
        CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
        if (source == NULL) {
                CFRelease(tap);
                return tapSourceFailed;
        }
        *tapOut = tap;
        *sourceOut = source;
        return tapOK;
}

static CGEventMask cgEventMaskBit(CGEventType type) {
        return ((CGEventMask)1) << type;
}

static CFRunLoopRef currentRunLoop(void) {
        return CFRunLoopGetCurrent();
}

static void addSourceToRunLoop(CFRunLoopRef loop, CFRunLoopSourceRef source) {
        CFRunLoopAddSource(loop, source, kCFRunLoopDefaultMode);
}

// runLoopSlice runs the current loop for at most seconds and reports whether
// the loop can keep running.
static bool runLoopSlice(double seconds) {
        SInt32 result = CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, false);
        return result != kCFRunLoopRunFinished;
}

static void stopRunLoop(CFRunLoopRef loop) {
        CFRunLoopStop(loop);
}

static void enableTap(CFMachPortRef tap, bool enable) {
        CGEventTapEnable(tap, enable);
}

static double cgEventGetX(CGEventRef event) {
        return CGEventGetLocation(event).x;
}

static double cgEventGetY(CGEventRef event) {
        return CGEventGetLocation(event).y;
}

static void postScroll(CGEventTapProxy proxy, int32_t vertical, int32_t horizontal,
                       double x, double y, bool setFlags, uint64_t flags) {
        CGEventRef scroll = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitPixel, 2, vertical, horizontal);
        if (scroll == NULL) {
                return;
        }
        CGEventSetLocation(scroll, CGPointMake(x, y));
        if (setFlags) {
                CGEventSetFlags(scroll, (CGEventFlags)flags);
        }
        CGEventTapPostEvent(proxy, scroll);
        CFRelease(scroll);
}

static void warpCursor(double x, double y) {
        CGWarpMouseCursorPosition(CGPointMake(x, y));
}

static void setSuppressionInterval(double seconds) {
        CGEventSourceRef source = CGEventSourceCreate(kCGEventSourceStateCombinedSessionState);
        if (source == NULL) {
                return;
        }
        CGEventSourceSetLocalEventsSuppressionInterval(source, seconds);
        CFRelease(source);
}
*/
import "C"

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/cgo"
	"sync"
	"time"
	"unsafe"

	"github.com/offlinefirst/dragscroll/pkg/scroll"
)

type platformCursor struct{}

func (platformCursor) Warp(p scroll.Point) {
	C.warpCursor(C.double(p.X), C.double(p.Y))
}

func (platformCursor) SetSuppressionInterval(d time.Duration) {
	C.setSuppressionInterval(C.double(d.Seconds()))
}

var cgEventTypes = map[scroll.EventType]C.CGEventType{
	scroll.EventMouseMoved:        C.kCGEventMouseMoved,
	scroll.EventLeftMouseDown:     C.kCGEventLeftMouseDown,
	scroll.EventLeftMouseUp:       C.kCGEventLeftMouseUp,
	scroll.EventLeftMouseDragged:  C.kCGEventLeftMouseDragged,
	scroll.EventRightMouseDown:    C.kCGEventRightMouseDown,
	scroll.EventRightMouseUp:      C.kCGEventRightMouseUp,
	scroll.EventRightMouseDragged: C.kCGEventRightMouseDragged,
	scroll.EventOtherMouseDown:    C.kCGEventOtherMouseDown,
	scroll.EventOtherMouseUp:      C.kCGEventOtherMouseUp,
	scroll.EventOtherMouseDragged: C.kCGEventOtherMouseDragged,
	scroll.EventScrollWheel:       C.kCGEventScrollWheel,
	scroll.EventFlagsChanged:      C.kCGEventFlagsChanged,
}

func eventTypeOf(t C.CGEventType) scroll.EventType {
	switch t {
	case C.kCGEventMouseMoved:
		return scroll.EventMouseMoved
	case C.kCGEventLeftMouseDown:
		return scroll.EventLeftMouseDown
	case C.kCGEventLeftMouseUp:
		return scroll.EventLeftMouseUp
	case C.kCGEventLeftMouseDragged:
		return scroll.EventLeftMouseDragged
	case C.kCGEventRightMouseDown:
		return scroll.EventRightMouseDown
	case C.kCGEventRightMouseUp:
		return scroll.EventRightMouseUp
	case C.kCGEventRightMouseDragged:
		return scroll.EventRightMouseDragged
	case C.kCGEventOtherMouseDown:
		return scroll.EventOtherMouseDown
	case C.kCGEventOtherMouseUp:
		return scroll.EventOtherMouseUp
	case C.kCGEventOtherMouseDragged:
		return scroll.EventOtherMouseDragged
	case C.kCGEventScrollWheel:
		return scroll.EventScrollWheel
	case C.kCGEventFlagsChanged:
		return scroll.EventFlagsChanged
	default:
		return scroll.EventOther
	}
}

type tapStream struct {
	engine *scroll.Engine
	tap    C.CFMachPortRef
	logger *slog.Logger
}

// runLoopPass bounds each CFRunLoop pass so a stop issued before the loop
// starts is still observed through ctx.
const runLoopPass = 500 * time.Millisecond

// Run installs the event tap on the calling goroutine's OS thread and
// delivers events to the engine until ctx is done.
func (t *Tap) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	stream := &tapStream{engine: t.engine, logger: t.logger}
	handle := cgo.NewHandle(stream)
	defer handle.Delete()

	var mask C.CGEventMask
	for _, et := range t.cfg.Subscriptions() {
		mask |= C.cgEventMaskBit(cgEventTypes[et])
	}

	var tap C.CFMachPortRef
	var source C.CFRunLoopSourceRef
	switch C.startEventTap(C.uintptr_t(handle), mask, &tap, &source) {
	case C.tapCreateFailed:
		return ErrCreateTap
	case C.tapSourceFailed:
		return ErrCreateSource
	}
	defer C.CFRelease(C.CFTypeRef(source))
	defer C.CFRelease(C.CFTypeRef(tap))
	stream.tap = tap

	loop := C.currentRunLoop()
	var stopOnce sync.Once
	stopLoop := func() {
		stopOnce.Do(func() {
			C.stopRunLoop(loop)
		})
	}
	C.addSourceToRunLoop(loop, source)
	C.enableTap(tap, true)

	stopped := make(chan struct{})
	cancelWatcher := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			stopLoop()
		case <-stopped:
		}
		close(cancelWatcher)
	}()

	t.logger.Info("event tap installed", "button", t.cfg.Button, "keys", t.cfg.Keys.Names(), "speed", t.cfg.Speed, "legacy", t.cfg.Legacy)
	for ctx.Err() == nil {
		if !C.runLoopSlice(C.double(runLoopPass.Seconds())) {
			break
		}
	}
	close(stopped)
	<-cancelWatcher

	C.enableTap(tap, false)
	t.engine.Close()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("event tap run loop exited")
}

func decodeEvent(eventType C.CGEventType, event C.CGEventRef) scroll.Event {
	return scroll.Event{
		Type:   eventTypeOf(eventType),
		Button: int64(C.CGEventGetIntegerValueField(event, C.kCGMouseEventButtonNumber)),
		Location: scroll.Point{
			X: float64(C.cgEventGetX(event)),
			Y: float64(C.cgEventGetY(event)),
		},
		DeltaX: int64(C.CGEventGetIntegerValueField(event, C.kCGMouseEventDeltaX)),
		DeltaY: int64(C.CGEventGetIntegerValueField(event, C.kCGMouseEventDeltaY)),
		Flags:  scroll.Flags(C.CGEventGetFlags(event)),
	}
}

//export goHandleEvent
func goHandleEvent(proxy C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, userInfo unsafe.Pointer) C.CGEventRef {
	stream, ok := cgo.Handle(uintptr(userInfo)).Value().(*tapStream)
	if !ok {
		return event
	}

	switch eventType {
	case C.kCGEventTapDisabledByTimeout, C.kCGEventTapDisabledByUserInput:
		stream.logger.Warn("event tap disabled by the system; re-enabling", "type", uint32(eventType))
		C.enableTap(stream.tap, true)
		return event
	}

	pass := dispatch(stream.engine, decodeEvent(eventType, event), func(sc scroll.ScrollEvent) {
		C.postScroll(proxy, C.int32_t(sc.Vertical), C.int32_t(sc.Horizontal),
			C.double(sc.Location.X), C.double(sc.Location.Y),
			C.bool(sc.StripFlags), C.uint64_t(sc.Flags))
	})
	if !pass {
		return nil
	}
	return event
}
