package common

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"
