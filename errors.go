package fontdata

import "fmt"

// MaxMemory is the maximum memory that can be allocated when decoding a table.
var MaxMemory uint32 = 30 * 1024 * 1024

// MaxEntries is the maximum number of entries a decoded table may contain.
var MaxEntries uint32 = 1 << 20

// ErrExceedsMemory is returned if decoding would allocate more than MaxMemory.
var ErrExceedsMemory = fmt.Errorf("memory limit exceded")

// ErrInvalidTable is returned if encoded table data is malformed.
var ErrInvalidTable = fmt.Errorf("invalid table data")

// ErrInvalidCodePoint is returned for negative code points.
var ErrInvalidCodePoint = fmt.Errorf("invalid code point")

// ErrUnknownFamily is returned when merging into a font family that was never declared.
var ErrUnknownFamily = fmt.Errorf("unknown font family")

// ErrAlreadyComplete is returned when a resource is marked complete a second time.
var ErrAlreadyComplete = fmt.Errorf("resource already complete")
