package renderer

import (
	"worldofbits/pkg/engine/world"
)

// Recorder is a Surface that remembers what is currently drawn. It backs the
// developer map dump and the engine tests.
type Recorder struct {
	Cells    map[world.Cell]CellView
	Order    []world.Cell
	Clears   int
	Draws    int
	Updates  int
	Statuses []Status
	Notices  []Notice
}

// NewRecorder returns an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{Cells: make(map[world.Cell]CellView)}
}

// Clear implements Surface
func (r *Recorder) Clear() {
	r.Clears++
	r.Cells = make(map[world.Cell]CellView)
	r.Order = r.Order[:0]
}

// DrawCell implements Surface
func (r *Recorder) DrawCell(v CellView) {
	r.Draws++
	if _, ok := r.Cells[v.Cell]; !ok {
		r.Order = append(r.Order, v.Cell)
	}
	r.Cells[v.Cell] = v
}

// UpdateCell implements Surface
func (r *Recorder) UpdateCell(v CellView) {
	r.Updates++
	if _, ok := r.Cells[v.Cell]; ok {
		r.Cells[v.Cell] = v
	}
}

// ShowStatus implements Surface
func (r *Recorder) ShowStatus(s Status) {
	r.Statuses = append(r.Statuses, s)
}

// Notify implements Surface
func (r *Recorder) Notify(n Notice) {
	r.Notices = append(r.Notices, n)
}

// LastStatus returns the most recent status, if any
func (r *Recorder) LastStatus() (Status, bool) {
	if len(r.Statuses) == 0 {
		return Status{}, false
	}
	return r.Statuses[len(r.Statuses)-1], true
}

// ResetNotices forgets recorded notices
func (r *Recorder) ResetNotices() {
	r.Notices = nil
}
