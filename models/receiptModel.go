package models

const (
	PrinterNetwork = "network"
	PrinterSystem  = "system"
)

type ReceiptItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Receipt is the invoice payload sent to POST /print-bill.
type Receipt struct {
	Issuer
	Invoice_number string        `json:"invoice_number"`
	Date           string        `json:"date"` // DD/MM/YYYY
	Time           string        `json:"time"` // hh:mm am
	Items          []ReceiptItem `json:"items"`
	Tax_rate       float64       `json:"tax_rate"` // Fraction
	Payment_method string        `json:"payment_method"`
	Receipt_url    string        `json:"receipt_url,omitempty"`
}

type PrinterTarget struct {
	Type string `json:"type" yaml:"type"`
	Ip   string `json:"ip,omitempty" yaml:"ip"`
	Port int    `json:"port,omitempty" yaml:"port"`
	Name string `json:"name,omitempty" yaml:"name"`
}

type PrintRequest struct {
	Receipt
	Printer *PrinterTarget `json:"printer,omitempty"`
}

type PrintResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
