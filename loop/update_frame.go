package loop

// UpdateFrame is handed to every system once per tick.
type UpdateFrame struct {
	DeltaTime float64
	// Tick counts frames run by the scheduler, starting at 1.
	Tick      uint64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, tick uint64, resources *Resources, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  commands,
		Resources: resources,
	}
}
