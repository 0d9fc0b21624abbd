package evalerr

// Structural error codes. These indicate a compiler bug or a malformed
// input tree and must not occur for well-typed programs (spec §7.3).
const (
	// STR001 indicates a Ref names a binding absent from the environment.
	STR001 = "STR001"

	// STR002 indicates a Call names a function header absent from the
	// environment.
	STR002 = "STR002"

	// STR003 indicates a Getter names a field absent from its record.
	STR003 = "STR003"

	// STR004 indicates a type mismatch: a non-boolean If condition, a
	// non-record Getter target, or another malformed node. Ill-typed
	// native arguments are reported by the native itself, as HOST001.
	STR004 = "STR004"
)

// HostErrorCode is the fixed code used for every native-function failure;
// the failing Header and the native's own message distinguish cases,
// following spec §7.2's "structured error carrying the failing header and
// the underlying message."
const HostErrorCode = "HOST001"

// ErrorInfo describes one structural error code for documentation and
// lookup purposes.
type ErrorInfo struct {
	Code    string
	Summary string
}

// ErrorRegistry enumerates the structural error taxonomy.
var ErrorRegistry = map[string]ErrorInfo{
	STR001: {STR001, "Unknown binding"},
	STR002: {STR002, "Unknown function header"},
	STR003: {STR003, "Missing record field"},
	STR004: {STR004, "Type mismatch"},
}

// GetErrorInfo returns information about a structural error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, ok := ErrorRegistry[code]
	return info, ok
}

// IsStructuralError reports whether code is a recognized structural
// error code.
func IsStructuralError(code string) bool {
	_, ok := ErrorRegistry[code]
	return ok
}
