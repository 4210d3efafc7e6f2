package scheduler

// System is one stage of a frame. Systems keep whatever state they need
// between frames in their own fields.
type System interface {
	Execute(frame *Frame)
}

// Frame carries the data for one pass over the registered systems.
type Frame struct {
	Number    uint64
	DeltaTime float64
	Commands  *Commands
}
