package appointment

// BusinessScope carries the resolved tenant identity into every operation.
type BusinessScope struct {
	BusinessID uint
	UserID     uint
}
