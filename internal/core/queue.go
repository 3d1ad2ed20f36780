package core

// ProcessQueue is an insertion-ordered ready container. Engines are single
// threaded so it carries no lock.
type ProcessQueue struct {
	queue []*Process
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*Process, 0)}
}

func (q *ProcessQueue) AddToEnd(p *Process) {
	q.queue = append(q.queue, p)
}

func (q *ProcessQueue) RemoveFromTop() (*Process, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	p := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return p, true
}

// RemoveBest removes the process whose remaining time wins under less. On
// ties the earliest inserted process is kept.
func (q *ProcessQueue) RemoveBest(less func(a, b int) bool) (*Process, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	best := 0
	for i := 1; i < len(q.queue); i++ {
		if less(q.queue[i].Remaining, q.queue[best].Remaining) {
			best = i
		}
	}
	p := q.queue[best]
	last := len(q.queue) - 1
	copy(q.queue[best:], q.queue[best+1:])
	q.queue[last] = nil
	q.queue = q.queue[:last]
	return p, true
}

func (q *ProcessQueue) Len() int {
	return len(q.queue)
}

func (q *ProcessQueue) Empty() bool {
	return len(q.queue) == 0
}

// Items returns a copy of the queue contents in order.
func (q *ProcessQueue) Items() []*Process {
	items := make([]*Process, len(q.queue))
	copy(items, q.queue)
	return items
}

// ShorterBurst orders two remaining-time snapshots for shortest-job-first.
func ShorterBurst(a, b int) bool {
	return a < b
}
