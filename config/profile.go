package config

import (
	"fmt"
	"os"

	"go-restaurant-pos/models"

	"gopkg.in/yaml.v2"
)

// Profile describes the restaurant a deployment bills for.
type Profile struct {
	models.Issuer  `yaml:",inline"`
	ReceiptURLBase string               `yaml:"receipt_url_base"`
	Printer        models.PrinterTarget `yaml:"printer"`
	TaxRates       []float64            `yaml:"tax_rates"` // Percent
}

func DefaultProfile() Profile {
	return Profile{
		Issuer: models.Issuer{
			Restaurant_name: "KHAN SAHAB RESTAURANT",
			Address:         "4, BANSAL NAGAR FATEHABAD ROAD AGRA",
			State:           "Uttar Pradesh",
			State_code:      "09",
			Phone:           "9319209322",
			Gstin:           "09AHDPA1039P2ZB",
			Fssai:           "12722001001504",
			Place_of_supply: "Uttar Pradesh",
		},
		ReceiptURLBase: "https://khansahabrestaurant.com/receipt/",
		Printer: models.PrinterTarget{
			Type: models.PrinterNetwork,
			Ip:   "192.168.1.100",
			Port: 9100,
		},
		TaxRates: []float64{0, 5, 10},
	}
}

// LoadProfile reads a YAML profile. A missing file yields DefaultProfile;
// fields absent from the file keep their defaults.
func LoadProfile(path string) (Profile, error) {
	def := DefaultProfile()
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return def, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	p.Issuer.FillFrom(def.Issuer)
	if p.ReceiptURLBase == "" {
		p.ReceiptURLBase = def.ReceiptURLBase
	}
	if p.Printer.Type == "" {
		p.Printer = def.Printer
	}
	if p.Printer.Type == models.PrinterNetwork && p.Printer.Port == 0 {
		p.Printer.Port = 9100
	}
	if len(p.TaxRates) == 0 {
		p.TaxRates = def.TaxRates
	}
	for _, r := range p.TaxRates {
		if r < 0 {
			return Profile{}, fmt.Errorf("profile %s: negative tax rate %v", path, r)
		}
	}
	return p, nil
}

// AllowsTaxRate reports whether rate is one of the profile's tax rates.
func (p Profile) AllowsTaxRate(rate float64) bool {
	for _, r := range p.TaxRates {
		if r == rate {
			return true
		}
	}
	return false
}
