package file

// BufferObserver implementations can register themselves with a
// RuneArray so they are told about every edit after it happens.
type BufferObserver interface {

	// Inserted informs the implementer that r was inserted at q0.
	Inserted(q0 int, r []rune)

	// Deleted informs the implementer that [q0,q1) was deleted.
	Deleted(q0, q1 int)
}
