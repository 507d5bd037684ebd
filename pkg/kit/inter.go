package kit

// ValueProvider is implemented by single-value containers.
type ValueProvider[T any] interface {
	// Get returns the value and whether it is available
	Get() (T, bool)
	// ValueOr returns the value or the fallback when it is not available
	ValueOr(fallback T) T
}

// Presence describes Optional[T]
type Presence[T any] interface {
	ValueProvider[T]
	// IsPresent returns true if a value is held
	IsPresent() bool
}

// WithError describes Expected[T, E]
type WithError[T, E any] interface {
	ValueProvider[T]
	// HasValue returns true on success
	HasValue() bool
	// Err returns the failure value, panics on success
	Err() E
}

// Number is satisfied by the built-in integer and floating point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

var (
	_ Presence[int]         = Optional[int]{}
	_ WithError[int, error] = Expected[int, error]{}
)
