package workflow

import (
	"strconv"
	"strings"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// Form field names, shared with the HTTP and CLI layers.
const (
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldPassword         = "password"
	FieldConfirmPassword  = "confirmPassword"
	FieldEmailOrPhone     = "emailOrPhone"
	FieldService          = "service"
	FieldVehicleNumber    = "vehicleNumber"
	FieldVehicleType      = "vehicleType"
	FieldRegisteredMobile = "registeredMobile"
	FieldEnrollmentNumber = "enrollmentNumber"
	FieldBookingNumber    = "bookingNumber"
	FieldAmount           = "amount"
	FieldMethod           = "method"
)

// RegistrationForm is the raw sign-up input.
type RegistrationForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func (f RegistrationForm) validate() domain.ValidationError {
	errs := domain.ValidationError{}

	if strings.TrimSpace(f.Name) == "" {
		errs.Add(FieldName, "Name is required")
	}

	if strings.TrimSpace(f.Email) == "" {
		errs.Add(FieldEmail, "Email is required")
	} else if !domain.IsValidEmail(f.Email) {
		errs.Add(FieldEmail, "Please enter a valid email")
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs.Add(FieldPhone, "Phone number is required")
	} else if !domain.IsValidPhone(f.Phone) {
		errs.Add(FieldPhone, "Enter a valid 10-digit number")
	}

	if f.Password == "" {
		errs.Add(FieldPassword, "Password is required")
	}

	if f.ConfirmPassword == "" {
		errs.Add(FieldConfirmPassword, "Please confirm your password")
	} else if f.Password != f.ConfirmPassword {
		errs.Add(FieldConfirmPassword, "Passwords do not match")
	}

	return errs
}

func (f RegistrationForm) account() domain.UserAccount {
	return domain.UserAccount{
		Name:     strings.TrimSpace(f.Name),
		Email:    f.Email,
		Phone:    f.Phone,
		Password: f.Password,
	}
}

// buildSelection validates the fields of one service variant and returns
// the selection. Every invalid field is reported.
func buildSelection(catalog domain.Catalog, t domain.ServiceType, fields map[string]string) (domain.ServiceSelection, domain.ValidationError) {
	errs := domain.ValidationError{}

	offer, ok := catalog.Offer(t)
	if t == domain.NoService {
		errs.Add(FieldService, "Please select a service")
		return domain.ServiceSelection{}, errs
	}
	if !ok {
		errs.Add(FieldService, "Selected service is not available")
		return domain.ServiceSelection{}, errs
	}

	field := func(name string) string { return strings.TrimSpace(fields[name]) }
	sel := domain.ServiceSelection{Type: t, Amount: offer.Price}

	switch t {
	case domain.FasTag:
		if v := field(FieldVehicleNumber); v == "" {
			errs.Add(FieldVehicleNumber, "Vehicle number is required")
		} else if !domain.IsValidVehicleNumber(v) {
			errs.Add(FieldVehicleNumber, "Invalid vehicle number format (e.g., MH12AB1234)")
		} else {
			sel.VehicleNumber = strings.ToUpper(v)
		}

		if v := field(FieldVehicleType); v == "" {
			errs.Add(FieldVehicleType, "Vehicle type is required")
		} else if !knownVehicleType(v) {
			errs.Add(FieldVehicleType, "Vehicle type must be one of "+strings.Join(domain.VehicleTypes, ", "))
		} else {
			sel.VehicleType = v
		}

		if v := field(FieldRegisteredMobile); v == "" {
			errs.Add(FieldRegisteredMobile, "Mobile number is required")
		} else if !domain.IsValidPhone(v) {
			errs.Add(FieldRegisteredMobile, "Invalid mobile number")
		} else {
			sel.RegisteredMobile = v
		}

	case domain.Education:
		if v := field(FieldEnrollmentNumber); v == "" {
			errs.Add(FieldEnrollmentNumber, "Enrollment number is required")
		} else {
			sel.EnrollmentNumber = v
		}

	case domain.Ferry:
		if v := field(FieldBookingNumber); v == "" {
			errs.Add(FieldBookingNumber, "Booking number is required")
		} else {
			sel.BookingNumber = v
		}
	}

	if offer.Editable {
		raw := field(FieldAmount)
		switch {
		case raw == "":
			errs.Add(FieldAmount, "Amount is required")
		case !domain.IsValidAmount(raw, offer.MinAmount):
			errs.Add(FieldAmount, "Minimum amount is "+domain.Rupees(offer.MinAmount).String())
		default:
			sel.Amount, _ = strconv.ParseInt(raw, 10, 64)
		}
	}

	if len(errs) > 0 {
		return domain.ServiceSelection{}, errs
	}
	return sel, nil
}

func knownVehicleType(v string) bool {
	for _, known := range domain.VehicleTypes {
		if v == known {
			return true
		}
	}
	return false
}
