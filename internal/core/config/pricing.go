package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// pricingFile is the YAML layout of PRICING_FILE. Services left out keep
// their default offer.
//
//	services:
//	  fastag:
//	    editable: true
//	    min_amount: 50
//	  education:
//	    enabled: false
type pricingFile struct {
	Services map[domain.ServiceType]offerOverride `yaml:"services"`
}

type offerOverride struct {
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	Price       *int64  `yaml:"price"`
	Editable    *bool   `yaml:"editable"`
	MinAmount   *int64  `yaml:"min_amount"`
	Enabled     *bool   `yaml:"enabled"`
}

// LoadPricing reads a pricing file and applies it over the default catalog.
func LoadPricing(path string) (domain.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing file: %w", err)
	}
	return ParsePricing(raw)
}

// ParsePricing applies YAML overrides to the default catalog.
func ParsePricing(raw []byte) (domain.Catalog, error) {
	var file pricingFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pricing file: %w", err)
	}

	catalog := domain.DefaultCatalog()
	for t, o := range file.Services {
		offer, known := catalog[t]
		if !known {
			return nil, fmt.Errorf("pricing file: unknown service %q", t)
		}
		if o.Title != nil {
			offer.Name = *o.Title
		}
		if o.Description != nil {
			offer.Description = *o.Description
		}
		if o.Price != nil {
			offer.Price = *o.Price
		}
		if o.Editable != nil {
			offer.Editable = *o.Editable
		}
		if o.MinAmount != nil {
			offer.MinAmount = *o.MinAmount
		}
		if o.Enabled != nil {
			offer.Enabled = *o.Enabled
		}

		if offer.Editable && offer.MinAmount <= 0 {
			return nil, fmt.Errorf("pricing file: %s needs a positive min_amount when editable", t)
		}
		if !offer.Editable && offer.Price <= 0 {
			return nil, fmt.Errorf("pricing file: %s needs a positive price", t)
		}
		catalog[t] = offer
	}

	if len(catalog.Offers()) == 0 {
		return nil, fmt.Errorf("pricing file disables every service")
	}
	return catalog, nil
}
