//go:build darwin

package config

/*
#cgo darwin LDFLAGS: -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>

enum { prefMissing = 0, prefOK = 1, prefWrongType = 2 };

static CFPropertyListRef copyPref(const char *key) {
        CFStringRef name = CFStringCreateWithCString(kCFAllocatorDefault, key, kCFStringEncodingUTF8);
        if (name == NULL) {
                return NULL;
        }
        CFPropertyListRef value = CFPreferencesCopyAppValue(name, kCFPreferencesCurrentApplication);
        CFRelease(name);
        return value;
}

static int prefInt(const char *key, int *out) {
        CFPropertyListRef value = copyPref(key);
        if (value == NULL) {
                return prefMissing;
        }
        int status = prefWrongType;
        if (CFGetTypeID(value) == CFNumberGetTypeID() &&
            CFNumberGetValue((CFNumberRef)value, kCFNumberIntType, out)) {
                status = prefOK;
        }
        CFRelease(value);
        return status;
}

static int prefBool(const char *key, int *out) {
        CFPropertyListRef value = copyPref(key);
        if (value == NULL) {
                return prefMissing;
        }
        int status = prefWrongType;
        if (CFGetTypeID(value) == CFBooleanGetTypeID()) {
                *out = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
                status = prefOK;
        }
        CFRelease(value);
        return status;
}

static CFArrayRef copyArrayPref(const char *key, int *status) {
        CFPropertyListRef value = copyPref(key);
        if (value == NULL) {
                *status = prefMissing;
                return NULL;
        }
        if (CFGetTypeID(value) != CFArrayGetTypeID()) {
                CFRelease(value);
                *status = prefWrongType;
                return NULL;
        }
        *status = prefOK;
        return (CFArrayRef)value;
}

static CFStringRef arrayStringAt(CFArrayRef array, CFIndex i) {
        CFTypeRef item = CFArrayGetValueAtIndex(array, i);
        if (item == NULL || CFGetTypeID(item) != CFStringGetTypeID()) {
                return NULL;
        }
        return (CFStringRef)item;
}
*/
import "C"

import (
	"strconv"
	"unsafe"
)

// readPreferences reads the activation keys from the application preference
// domain, the store written by `defaults write`.
func readPreferences() (overrides, bool) {
	var out overrides

	if v, status := prefInt("button"); status == C.prefOK {
		out.setButton(v)
	} else if status == C.prefWrongType {
		out.invalidButton("<non-integer preference>")
	}

	readKeysPreference(&out)

	if v, status := prefInt("speed"); status == C.prefOK {
		out.setSpeed(v)
	} else if status == C.prefWrongType {
		out.invalidSpeed("<non-integer preference>")
	}

	key := C.CString("legacy_button_hold_behaviour")
	defer C.free(unsafe.Pointer(key))
	var legacy C.int
	switch C.prefBool(key, &legacy) {
	case C.prefOK:
		out.setLegacy(legacy != 0)
	case C.prefWrongType:
		out.invalidLegacy("<non-boolean preference>")
	}

	return out, !out.empty()
}

func prefInt(name string) (int, C.int) {
	key := C.CString(name)
	defer C.free(unsafe.Pointer(key))
	var v C.int
	status := C.prefInt(key, &v)
	return int(v), status
}

func readKeysPreference(out *overrides) {
	key := C.CString("keys")
	defer C.free(unsafe.Pointer(key))

	var status C.int
	array := C.copyArrayPref(key, &status)
	switch status {
	case C.prefMissing:
		return
	case C.prefWrongType:
		out.invalidKeys("keys preference must be an array of strings")
		return
	}
	defer C.CFRelease(C.CFTypeRef(array))

	count := int(C.CFArrayGetCount(array))
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		str := C.arrayStringAt(array, C.CFIndex(i))
		if str == 0 {
			out.invalidKeys("keys entry " + strconv.Itoa(i) + " is not a string")
			return
		}
		names = append(names, cfStringToGo(str))
	}
	out.setKeys(names)
}

// cfStringToGo converts a borrowed CFString; the caller keeps ownership.
func cfStringToGo(str C.CFStringRef) string {
	length := C.CFStringGetLength(str)
	if length == 0 {
		return ""
	}
	bufSize := C.CFIndex(1 + 4*length)
	buf := make([]byte, int(bufSize))
	if C.CFStringGetCString(str, (*C.char)(unsafe.Pointer(&buf[0])), bufSize, C.kCFStringEncodingUTF8) == C.Boolean(0) {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(&buf[0])))
}
