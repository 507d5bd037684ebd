package opt

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/kit3/pkg/kit"
)

func parse(s string) kit.Optional[int] {
	n, err := strconv.Atoi(s)
	return kit.FromPair(n, err == nil)
}

func TestAndThen_WithValue(t *testing.T) {
	t.Parallel()

	res := AndThen(kit.Some("42"), parse)
	require.True(t, res.IsPresent())
	assert.Equal(t, 42, res.Value())

	assert.True(t, AndThen(kit.Some("x"), parse).IsAbsent())
}

func TestAndThen_EmptyDoesNotCall(t *testing.T) {
	t.Parallel()

	calls := 0
	res := AndThen(kit.None[string](), func(s string) kit.Optional[int] {
		calls++
		return parse(s)
	})

	assert.True(t, res.IsAbsent())
	assert.Zero(t, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(x int) int { return x * 2 }
	assert.Equal(t, 10, Map(kit.Some(5), double).Value())
	assert.True(t, Map(kit.None[int](), double).IsAbsent())
	assert.Equal(t, "10", Map(kit.Some(10), strconv.Itoa).Value())
}

func TestPipe(t *testing.T) {
	t.Parallel()

	addTwo := func(x int) kit.Optional[int] { return kit.Some(x + 2) }
	calls := 0
	drop := func(int) kit.Optional[int] {
		calls++
		return kit.None[int]()
	}

	assert.Equal(t, 7, Pipe(kit.Some(3), addTwo, addTwo).Value())
	assert.True(t, Pipe(kit.Some(3), drop, drop, addTwo).IsAbsent())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, Pipe(kit.Some(3)).Value())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	called := false
	fallback := func() int {
		called = true
		return 10
	}

	assert.Equal(t, 5, OrElse(kit.Some(5), fallback))
	assert.False(t, called)

	assert.Equal(t, 10, OrElse(kit.None[int](), fallback))
	assert.True(t, called)
}

func TestOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Or(kit.Some(7), kit.Some(20)).Value())
	assert.Equal(t, 20, Or(kit.None[int](), kit.Some(20)).Value())
	assert.True(t, Or(kit.None[int](), kit.None[int]()).IsAbsent())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(x int) bool { return x%2 == 0 }
	assert.Equal(t, 4, Filter(kit.Some(4), even).Value())
	assert.True(t, Filter(kit.Some(3), even).IsAbsent())
	assert.True(t, Filter(kit.None[int](), even).IsAbsent())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	v := 9
	assert.Equal(t, 9, FromPtr(&v).Value())
	assert.True(t, FromPtr[int](nil).IsAbsent())
}

func TestFromNillable(t *testing.T) {
	t.Parallel()

	var nilMap map[string]int
	var nilPtr *int
	var nilErr error

	assert.True(t, FromNillable(nilMap).IsAbsent())
	assert.True(t, FromNillable(nilPtr).IsAbsent())
	assert.True(t, FromNillable(nilErr).IsAbsent())
	assert.True(t, FromNillable(map[string]int{}).IsPresent())
	assert.True(t, FromNillable(0).IsPresent())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Flatten(kit.Some(kit.Some(1))).Value())
	assert.True(t, Flatten(kit.Some(kit.None[int]())).IsAbsent())
	assert.True(t, Flatten(kit.None[kit.Optional[int]]()).IsAbsent())
}

func TestAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []kit.Optional[float64]
		present bool
		want    float64
	}{
		{
			name:    "all present",
			input:   []kit.Optional[float64]{kit.Some(1.0), kit.Some(2.0), kit.Some(3.0), kit.Some(4.0)},
			present: true,
			want:    2.5,
		},
		{
			name:    "some missing",
			input:   []kit.Optional[float64]{kit.None[float64](), kit.Some(2.0), kit.None[float64](), kit.Some(6.0)},
			present: true,
			want:    4.0,
		},
		{
			name:    "single present",
			input:   []kit.Optional[float64]{kit.None[float64](), kit.Some(3.14), kit.None[float64]()},
			present: true,
			want:    3.14,
		},
		{
			name:  "all missing",
			input: []kit.Optional[float64]{kit.None[float64](), kit.None[float64]()},
		},
		{
			name:  "empty",
			input: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Average(tt.input)
			require.Equal(t, tt.present, got.IsPresent())
			if tt.present {
				assert.InDelta(t, tt.want, got.Value(), 1e-9)
			}
		})
	}
}

func TestAverage_Integers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, Average([]kit.Optional[int]{kit.Some(1), kit.Some(4), kit.None[int]()}).Value())
}
