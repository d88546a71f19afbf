package vec

// Typed constructors are pre-bound instantiations of New with the
// canonical value behavior for that payload kind.

// NewValue returns an owning vector for a plain value payload type.
func NewValue[T any]() *Vector[T] {
	return New(Value[T]())
}

// NewShallow returns a non owning vector which stores caller supplied
// references as-is.
func NewShallow[T any]() *Vector[T] {
	return New(Shallow[T]())
}

func NewString() *Vector[string]   { return NewValue[string]() }
func NewByte() *Vector[byte]       { return NewValue[byte]() }
func NewInt() *Vector[int]         { return NewValue[int]() }
func NewInt16() *Vector[int16]     { return NewValue[int16]() }
func NewInt64() *Vector[int64]     { return NewValue[int64]() }
func NewFloat32() *Vector[float32] { return NewValue[float32]() }
func NewFloat64() *Vector[float64] { return NewValue[float64]() }
func NewUint() *Vector[uint]       { return NewValue[uint]() }
func NewUint8() *Vector[uint8]     { return NewValue[uint8]() }
func NewUint16() *Vector[uint16]   { return NewValue[uint16]() }
func NewUint64() *Vector[uint64]   { return NewValue[uint64]() }
