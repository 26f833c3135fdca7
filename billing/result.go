package billing

// Stage records how far a payment got.
type Stage int

const (
	PaymentStarted Stage = iota + 1
	StatusUpdated
	InvoiceSaved
	InvoiceSkipped
	Printed
	PrintSkipped
	Done
)

var stageNames = map[Stage]string{
	PaymentStarted: "payment started",
	StatusUpdated:  "status updated",
	InvoiceSaved:   "invoice saved",
	InvoiceSkipped: "invoice skipped",
	Printed:        "printed",
	PrintSkipped:   "print skipped",
	Done:           "done",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

type Result struct {
	// Success is true once the order is marked paid.
	Success      bool
	InvoiceSaved bool
	PrintSuccess bool
	// InvoiceNumber is the number the backend stored, empty when the
	// invoice was not saved.
	InvoiceNumber string
	Totals        Totals
	Stages        []Stage

	InvoiceErr error
	PrintErr   error
}
