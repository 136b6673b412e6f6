package model

// MethodName identifies one of the per-frame callbacks the locator
// knows how to find.
type MethodName string

const (
	// Update runs once per rendered frame.
	Update MethodName = "Update"
	// FixedUpdate runs on the fixed physics timestep.
	FixedUpdate MethodName = "FixedUpdate"
	// LateUpdate runs after all Update calls in a frame.
	LateUpdate MethodName = "LateUpdate"
)

// MethodNames returns the callback names in canonical evaluation order.
// Findings for callback bodies are always emitted in this order so the
// output sequence is deterministic.
func MethodNames() []MethodName {
	return []MethodName{Update, FixedUpdate, LateUpdate}
}

// MethodRange is the 1-based inclusive line span of one brace-delimited
// callback body: the line holding the opening brace through the line
// holding its matching closing brace.
type MethodRange struct {
	Method    MethodName
	StartLine int
	EndLine   int
}
