//go:build darwin

package permissions

/*
#cgo darwin LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

static Boolean axTrusted(Boolean prompt) {
        if (!prompt) {
                return AXIsProcessTrusted();
        }
        const void *keys[] = { kAXTrustedCheckOptionPrompt };
        const void *values[] = { kCFBooleanTrue };
        CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 1,
                                                     &kCFTypeDictionaryKeyCallBacks,
                                                     &kCFTypeDictionaryValueCallBacks);
        Boolean trusted = AXIsProcessTrustedWithOptions(options);
        CFRelease(options);
        return trusted;
}

extern void goAccessibilityChanged(uintptr_t handle);

static void accessibilityCallback(CFNotificationCenterRef center, void *observer,
                                  CFNotificationName name, const void *object,
                                  CFDictionaryRef userInfo) {
        goAccessibilityChanged((uintptr_t)observer);
}

static void addAccessibilityObserver(uintptr_t handle) {
        CFNotificationCenterAddObserver(CFNotificationCenterGetDistributedCenter(),
                                        (const void *)handle, accessibilityCallback,
                                        CFSTR("com.apple.accessibility.api"), NULL,
                                        CFNotificationSuspensionBehaviorDeliverImmediately);
}

static void removeAccessibilityObserver(uintptr_t handle) {
        CFNotificationCenterRemoveObserver(CFNotificationCenterGetDistributedCenter(),
                                           (const void *)handle,
                                           CFSTR("com.apple.accessibility.api"), NULL);
}

static CFRunLoopRef retainCurrentRunLoop(void) {
        return (CFRunLoopRef)CFRetain(CFRunLoopGetCurrent());
}

static void runCurrentRunLoop(void) {
        CFRunLoopRun();
}

static void stopRunLoop(CFRunLoopRef loop) {
        CFRunLoopStop(loop);
}

static void releaseRunLoop(CFRunLoopRef loop) {
        CFRelease(loop);
}
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"time"
)

func platformTrusted(prompt bool) bool {
	p := C.Boolean(0)
	if prompt {
		p = C.Boolean(1)
	}
	return C.axTrusted(p) != C.Boolean(0)
}

// observeAccessibility runs a dedicated run loop that receives the
// distributed accessibility notification.
func observeAccessibility(notify func()) func() {
	handle := cgo.NewHandle(notify)
	loops := make(chan C.CFRunLoopRef, 1)
	done := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)

		C.addAccessibilityObserver(C.uintptr_t(handle))
		defer C.removeAccessibilityObserver(C.uintptr_t(handle))

		loops <- C.retainCurrentRunLoop()
		C.runCurrentRunLoop()
	}()

	loop := <-loops
	var once sync.Once
	return func() {
		once.Do(func() {
			// A stop issued before the loop starts running is lost, so
			// repeat it until the goroutine exits.
			for stopped := false; !stopped; {
				C.stopRunLoop(loop)
				select {
				case <-done:
					stopped = true
				case <-time.After(10 * time.Millisecond):
				}
			}
			C.releaseRunLoop(loop)
			handle.Delete()
		})
	}
}

//export goAccessibilityChanged
func goAccessibilityChanged(h C.uintptr_t) {
	notify, ok := cgo.Handle(h).Value().(func())
	if !ok {
		return
	}
	notify()
}
