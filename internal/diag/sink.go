package diag

// Sink is the collaborator that receives emitted diagnostics. Delivery is
// synchronous and move-only: the engine assumes no reordering and no
// retries, and keeps processing the rest of a block-line even if a sink
// call fails silently.
type Sink interface {
	ReportDiagnostic(d Diagnostic)
}

// Bag is the simplest Sink: it collects every diagnostic it is given, in
// emission order, for later sorting/printing/testing.
type Bag struct {
	items []Diagnostic
}

// NewBag returns an empty Bag.
func NewBag() *Bag { return &Bag{} }

// ReportDiagnostic implements Sink.
func (b *Bag) ReportDiagnostic(d Diagnostic) {
	b.items = append(b.items, d)
}

// Items returns the diagnostics collected so far, in emission order. The
// returned slice aliases the Bag's internal storage; callers must not
// mutate it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Len reports how many diagnostics the bag has collected.
func (b *Bag) Len() int { return len(b.items) }

// Reset drops every collected diagnostic, allowing the Bag to be reused
// across passes (e.g. one per file in a batch run).
func (b *Bag) Reset() {
	b.items = b.items[:0]
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Diagnostic)

// ReportDiagnostic implements Sink.
func (f SinkFunc) ReportDiagnostic(d Diagnostic) { f(d) }
