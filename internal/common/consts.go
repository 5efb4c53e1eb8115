package common

// UnknownStr is the rendering used by enum String methods for values
// outside their defined range.
const UnknownStr = "unknown"
