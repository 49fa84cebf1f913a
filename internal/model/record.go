package model

// Record is implemented by every stored entity. Records are never removed
// from their backend; Live reports whether the liveness flag still marks the
// record as present.
type Record interface {
	Live() bool
}
