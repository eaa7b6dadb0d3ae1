package loop

// System is one step of a frame. Systems run in registration order; fields of
// type Singleton[T] are bound to the scheduler's resources on registration and
// any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
