package util

import "sync/atomic"

// Progress counts finished units of a fixed-size job and is safe to use concurrently.
type Progress struct {
	done     int32
	total    int32
	onChange func(done, total int)
}

// NewProgress creates a Progress for total units. onChange may be nil; when set it is
// called after every Step from whichever goroutine made the step.
func NewProgress(total int, onChange func(done, total int)) *Progress {
	return &Progress{total: int32(total), onChange: onChange}
}

// Step marks one unit as finished and returns the new finished count.
func (p *Progress) Step() int {
	done := int(atomic.AddInt32(&p.done, 1))
	if p.onChange != nil {
		p.onChange(done, p.Total())
	}
	return done
}

// Done returns the number of finished units.
func (p *Progress) Done() int {
	return int(atomic.LoadInt32(&p.done))
}

// Total returns the number of units in the job.
func (p *Progress) Total() int {
	return int(atomic.LoadInt32(&p.total))
}

// Complete reports whether every unit has finished.
func (p *Progress) Complete() bool {
	return p.Done() >= p.Total()
}
