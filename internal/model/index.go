package model

// Index wraps a list position so one-based user-facing indexes and
// zero-based internal offsets cannot be confused. Construct via
// IndexFromOneBased or IndexFromZeroBased only.
type Index struct {
	zeroBased int
}

// IndexFromOneBased builds an Index from a one-based position.
func IndexFromOneBased(oneBased int) Index {
	return Index{zeroBased: oneBased - 1}
}

// IndexFromZeroBased builds an Index from a zero-based offset.
func IndexFromZeroBased(zeroBased int) Index {
	return Index{zeroBased: zeroBased}
}

// ZeroBased returns the internal zero-based offset.
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// OneBased returns the user-facing one-based position.
func (i Index) OneBased() int {
	return i.zeroBased + 1
}
