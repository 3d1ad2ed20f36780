package core

// IoDevice holds blocked processes. Every member performs one tick of i/o per
// simulated tick, so there is no contention between them.
type IoDevice struct {
	blocked []*Process
}

func NewIoDevice() *IoDevice {
	return &IoDevice{blocked: make([]*Process, 0)}
}

func (d *IoDevice) Submit(p *Process) {
	if p.State != Blocked {
		panic("core: submit of non-blocked process " + p.String())
	}
	d.blocked = append(d.blocked, p)
}

// IoExecute runs one tick of i/o on every blocked process and returns, in
// submission order, the ones that left the device.
func (d *IoDevice) IoExecute() []*Process {
	if len(d.blocked) == 0 {
		return nil
	}
	var done []*Process
	still := d.blocked[:0]
	for _, p := range d.blocked {
		p.Tick()
		if p.State == Blocked {
			still = append(still, p)
			continue
		}
		done = append(done, p)
	}
	for i := len(still); i < len(d.blocked); i++ {
		d.blocked[i] = nil
	}
	d.blocked = still
	return done
}

func (d *IoDevice) Len() int {
	return len(d.blocked)
}

func (d *IoDevice) Empty() bool {
	return len(d.blocked) == 0
}

func (d *IoDevice) Items() []*Process {
	items := make([]*Process, len(d.blocked))
	copy(items, d.blocked)
	return items
}
