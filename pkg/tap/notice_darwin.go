//go:build darwin

package tap

/*
#cgo darwin LDFLAGS: -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>

static void displayCautionNotice(const char *header) {
        CFStringRef text = CFStringCreateWithCString(kCFAllocatorDefault, header, kCFStringEncodingUTF8);
        if (text == NULL) {
                return;
        }
        CFUserNotificationDisplayNotice(0, kCFUserNotificationCautionAlertLevel,
                                        NULL, NULL, NULL, text, NULL, NULL);
        CFRelease(text);
}
*/
import "C"

import "unsafe"

// DisplayNotice shows a caution alert with header as its title.
func DisplayNotice(header string) {
	text := C.CString(header)
	defer C.free(unsafe.Pointer(text))
	C.displayCautionNotice(text)
}
