package evalerr

// Structural builds a structural error (unknown binding/header/field,
// type mismatch). cost is the budget already consumed when the error was
// discovered, preserved in the payload per spec §7.
func Structural(code, message string, cost int, data map[string]any) error {
	return WrapReport(&Report{
		Schema:  "evalcore.error/v1",
		Code:    code,
		Kind:    "structural",
		Message: message,
		Cost:    cost,
		Data:    data,
	})
}

// UnknownBinding reports a Ref to a name absent from the environment.
func UnknownBinding(name string, cost int) error {
	return Structural(STR001, "unknown binding: "+name, cost, map[string]any{"name": name})
}

// UnknownFunction reports a Call to a header absent from the environment.
func UnknownFunction(header string, cost int) error {
	return Structural(STR002, "unknown function: "+header, cost, map[string]any{"header": header})
}

// MissingField reports a Getter naming a field absent from its record.
func MissingField(typeName, field string, cost int) error {
	return Structural(STR003, "no field "+field+" on "+typeName, cost,
		map[string]any{"type": typeName, "field": field})
}

// TypeMismatch reports a non-boolean If condition, a non-record Getter
// target, or another malformed node (ill-typed native arguments are
// reported through Host instead).
func TypeMismatch(where, message string, cost int) error {
	return Structural(STR004, message, cost, map[string]any{"where": where})
}

// Host builds the error an evaluation aborts with when a native function
// reports a domain-specific failure (division by zero, signature
// mismatch, ...). cost includes whatever was already committed for the
// call that failed.
func Host(header, message string, cost int) error {
	return WrapReport(&Report{
		Schema:  "evalcore.error/v1",
		Code:    HostErrorCode,
		Kind:    "host",
		Header:  header,
		Message: message,
		Cost:    cost,
	})
}
