package kit

// Unit is the result of a continuation that only runs for its effect.
type Unit struct{}
