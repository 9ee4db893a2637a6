package domain

import "fmt"

type ServiceType string

const (
	NoService ServiceType = ""
	FasTag    ServiceType = "fastag"
	Education ServiceType = "education"
	Ferry     ServiceType = "ferry"
)

// ServiceTypes is the display order of the catalog.
var ServiceTypes = []ServiceType{FasTag, Education, Ferry}

// VehicleTypes accepted for a FasTag recharge.
var VehicleTypes = []string{"Car", "Bus", "Truck"}

// Title is the name printed on the checkout page and the receipt.
func (t ServiceType) Title() string {
	switch t {
	case FasTag:
		return "FasTag Recharge"
	case Education:
		return "Education Fee"
	case Ferry:
		return "Ferry Booking"
	default:
		return "Service"
	}
}

// ServiceSelection is the chosen billable service with the fields of its
// variant. Fields that belong to other variants stay empty.
type ServiceSelection struct {
	Type             ServiceType `json:"type"`
	VehicleNumber    string      `json:"vehicleNumber,omitempty"`
	VehicleType      string      `json:"vehicleType,omitempty"`
	RegisteredMobile string      `json:"registeredMobile,omitempty"`
	EnrollmentNumber string      `json:"enrollmentNumber,omitempty"`
	BookingNumber    string      `json:"bookingNumber,omitempty"`
	Amount           int64       `json:"amount"`
}

func (s ServiceSelection) IsNone() bool {
	return s.Type == NoService
}

func (s ServiceSelection) Price() Money {
	return Rupees(s.Amount)
}

// Details is the one-line, variant specific description of the selection.
func (s ServiceSelection) Details() string {
	switch s.Type {
	case FasTag:
		return fmt.Sprintf("Vehicle: %s (%s)", s.VehicleNumber, s.VehicleType)
	case Education:
		return "Enrollment: " + s.EnrollmentNumber
	case Ferry:
		return "Booking: " + s.BookingNumber
	default:
		return ""
	}
}

// ServiceOffer is one entry of the catalog. When Editable is set the user
// enters the amount, which must be at least MinAmount; otherwise Price is
// charged.
type ServiceOffer struct {
	Type        ServiceType `json:"id" yaml:"-"`
	Name        string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Price       int64       `json:"amount" yaml:"price"`
	Editable    bool        `json:"editable" yaml:"editable"`
	MinAmount   int64       `json:"minAmount,omitempty" yaml:"min_amount"`
	Enabled     bool        `json:"-" yaml:"enabled"`
}

// Catalog holds the offers of one deployment.
type Catalog map[ServiceType]ServiceOffer

// DefaultCatalog is the fixed price list: FasTag 500, Education 1200, Ferry 350.
func DefaultCatalog() Catalog {
	return Catalog{
		FasTag: {
			Type:        FasTag,
			Name:        "FasTag",
			Description: "Recharge your vehicle FasTag",
			Price:       500,
			MinAmount:   50,
			Enabled:     true,
		},
		Education: {
			Type:        Education,
			Name:        "Education",
			Description: "Pay your education fees",
			Price:       1200,
			Enabled:     true,
		},
		Ferry: {
			Type:        Ferry,
			Name:        "Ferry Booking",
			Description: "Book your ferry ticket",
			Price:       350,
			Enabled:     true,
		},
	}
}

// Offer returns the enabled offer for t.
func (c Catalog) Offer(t ServiceType) (ServiceOffer, bool) {
	offer, ok := c[t]
	if !ok || !offer.Enabled {
		return ServiceOffer{}, false
	}
	return offer, true
}

// Offers lists the enabled offers in catalog order.
func (c Catalog) Offers() []ServiceOffer {
	out := make([]ServiceOffer, 0, len(c))
	for _, t := range ServiceTypes {
		if offer, ok := c.Offer(t); ok {
			out = append(out, offer)
		}
	}
	return out
}
