package numeric

import (
	"fmt"
	"math"
	"reflect"
)

// DType identifies the element type of an Array.
type DType int

const (
	// Float64 stores elements as-is.
	Float64 DType = iota
	// Int64 truncates elements toward zero on construction and casting.
	Int64
)

func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// Array is a rectangular n-dimensional numeric array. A zero-dimensional
// Array wraps a single scalar. Arrays are value objects: they are not
// mutated after construction.
type Array struct {
	dtype DType
	shape []int
	data  []float64 // flat, row-major
}

// NewScalar returns a zero-dimensional array holding v.
func NewScalar(v float64) *Array {
	return &Array{dtype: Float64, shape: nil, data: []float64{v}}
}

// NewVector wraps data as a one-dimensional array without copying.
func NewVector(data []float64) *Array {
	return &Array{dtype: Float64, shape: []int{len(data)}, data: data}
}

// NewGrid wraps row-major data as a (ny, nx) two-dimensional array without
// copying. Fails when the element count does not match the shape.
func NewGrid(data []float64, ny, nx int) (*Array, error) {
	if ny < 0 || nx < 0 {
		return nil, fmt.Errorf("%w: negative grid shape (%d, %d)", ErrInvalidInput, ny, nx)
	}
	if len(data) != ny*nx {
		return nil, fmt.Errorf("%w: grid shape (%d, %d) requires %d values, got %d",
			ErrInvalidInput, ny, nx, ny*nx, len(data))
	}
	return &Array{dtype: Float64, shape: []int{ny, nx}, data: data}, nil
}

// DType reports the element type.
func (a *Array) DType() DType { return a.dtype }

// NDim reports the number of dimensions. Scalars have zero.
func (a *Array) NDim() int { return len(a.shape) }

// Shape returns a copy of the dimension sizes, outermost first.
func (a *Array) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Size reports the total element count.
func (a *Array) Size() int { return len(a.data) }

// IsScalar reports whether the array is zero-dimensional.
func (a *Array) IsScalar() bool { return len(a.shape) == 0 }

// Scalar returns the value of a zero-dimensional or single-element array.
func (a *Array) Scalar() (float64, error) {
	if len(a.data) != 1 {
		return 0, fmt.Errorf("%w: array of size %d is not a scalar", ErrInvalidInput, len(a.data))
	}
	return a.data[0], nil
}

// Values returns the flat row-major backing slice. The slice is shared with
// the array; callers must treat it as read-only.
func (a *Array) Values() []float64 { return a.data }

// At returns the element at the given indices, one per dimension. It panics
// on a rank mismatch or out-of-range index; both are programmer errors.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("numeric: At called with %d indices on %d-dimensional array",
			len(indices), len(a.shape)))
	}
	flat := 0
	for d, idx := range indices {
		if idx < 0 || idx >= a.shape[d] {
			panic(fmt.Sprintf("numeric: index %d out of range for dimension %d (size %d)",
				idx, d, a.shape[d]))
		}
		flat = flat*a.shape[d] + idx
	}
	return a.data[flat]
}

// AsType returns the array cast to dt. When the array already has that dtype
// it is returned unchanged; otherwise a converted copy is made.
func (a *Array) AsType(dt DType) *Array {
	if a.dtype == dt {
		return a
	}
	data := make([]float64, len(a.data))
	for i, v := range a.data {
		data[i] = castValue(v, dt)
	}
	return &Array{dtype: dt, shape: a.shape, data: data}
}

// AllClose reports NaN-aware approximate equality to b with the default
// tolerances. Arrays of different shape are never close.
func (a *Array) AllClose(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	return AllClose(a.data, b.data)
}

func castValue(v float64, dt DType) float64 {
	if dt == Int64 {
		return math.Trunc(v)
	}
	return v
}

// EnsureNumeric normalizes v into an Array.
//
// v may be an existing *Array, a numeric scalar, or a (nested) slice of
// numeric values. Strings cannot be numerically interpreted and fail with
// ErrInvalidInput, as do ragged nested slices.
//
// With no dtype argument an existing *Array is returned unchanged, avoiding
// a copy of potentially large grid data; anything else is converted to a
// fresh Float64 array. With a dtype argument the result is cast to exactly
// that type, still skipping the copy when v is already an *Array of that
// dtype.
func EnsureNumeric(v any, dtype ...DType) (*Array, error) {
	if len(dtype) > 1 {
		return nil, fmt.Errorf("%w: at most one dtype may be given, got %d", ErrInvalidInput, len(dtype))
	}

	if a, ok := v.(*Array); ok {
		if len(dtype) == 0 {
			return a, nil
		}
		return a.AsType(dtype[0]), nil
	}

	shape, flat, err := flatten(v)
	if err != nil {
		return nil, err
	}
	a := &Array{dtype: Float64, shape: shape, data: flat}
	if len(dtype) == 1 && dtype[0] != Float64 {
		// Cast in place: flat was freshly allocated above.
		for i := range a.data {
			a.data[i] = castValue(a.data[i], dtype[0])
		}
		a.dtype = dtype[0]
	}
	return a, nil
}

// flatten converts a scalar or nested sequence to (shape, row-major data).
func flatten(v any) ([]int, []float64, error) {
	if s, ok := scalarValue(v); ok {
		return nil, []float64{s}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return nil, nil, fmt.Errorf("%w: cannot interpret string %q as numeric data", ErrInvalidInput, v)
	case reflect.Slice, reflect.Array:
		shape, err := sequenceShape(rv)
		if err != nil {
			return nil, nil, err
		}
		size := 1
		for _, n := range shape {
			size *= n
		}
		flat := make([]float64, 0, size)
		flat, err = appendElements(flat, rv, shape)
		if err != nil {
			return nil, nil, err
		}
		return shape, flat, nil
	default:
		return nil, nil, fmt.Errorf("%w: cannot interpret %T as numeric data", ErrInvalidInput, v)
	}
}

// sequenceShape walks the first element of each nesting level to determine
// the shape. Rectangularity is enforced later by appendElements.
func sequenceShape(rv reflect.Value) ([]int, error) {
	var shape []int
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			return shape, nil
		}
		elem := rv.Index(0)
		for elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		rv = elem
	}
	if rv.Kind() == reflect.String {
		return nil, fmt.Errorf("%w: cannot interpret string %q as numeric data", ErrInvalidInput, rv.String())
	}
	return shape, nil
}

// appendElements appends the elements of rv to flat in row-major order,
// verifying every branch matches the expected shape.
func appendElements(flat []float64, rv reflect.Value, shape []int) ([]float64, error) {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	if len(shape) == 0 {
		s, ok := scalarValue(rv.Interface())
		if !ok {
			return nil, fmt.Errorf("%w: cannot interpret %T as numeric data", ErrInvalidInput, rv.Interface())
		}
		return append(flat, s), nil
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: ragged nested sequence", ErrInvalidInput)
	}
	if rv.Len() != shape[0] {
		return nil, fmt.Errorf("%w: ragged nested sequence (expected length %d, got %d)",
			ErrInvalidInput, shape[0], rv.Len())
	}

	var err error
	for i := 0; i < rv.Len(); i++ {
		flat, err = appendElements(flat, rv.Index(i), shape[1:])
		if err != nil {
			return nil, err
		}
	}
	return flat, nil
}

// scalarValue converts supported numeric scalar types to float64.
func scalarValue(v any) (float64, bool) {
	switch s := v.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int64:
		return float64(s), true
	case int32:
		return float64(s), true
	case int16:
		return float64(s), true
	case int8:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint64:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint8:
		return float64(s), true
	default:
		return 0, false
	}
}
