package workflow

import (
	"fmt"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// Step is a stage of the checkout. Steps are totally ordered; each one
// requires every earlier one.
type Step int

const (
	StepAnonymous Step = iota
	StepAuthenticated
	StepServiceChosen
	StepPaymentChosen
	StepCompleted
)

var stepNames = map[Step]string{
	StepAnonymous:     "anonymous",
	StepAuthenticated: "authenticated",
	StepServiceChosen: "service_chosen",
	StepPaymentChosen: "payment_chosen",
	StepCompleted:     "completed",
}

var stepPaths = map[Step]string{
	StepAnonymous:     "/v1/login",
	StepAuthenticated: "/v1/services",
	StepServiceChosen: "/v1/payment",
	StepPaymentChosen: "/v1/payment",
	StepCompleted:     "/v1/confirmation",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Path is the page a user is sent to when s is the furthest reachable step.
func (s Step) Path() string {
	return stepPaths[s]
}

// CurrentStep derives the furthest step state has satisfied.
func CurrentStep(state State) Step {
	if state.User == nil {
		return StepAnonymous
	}
	if !serviceComplete(state.Service) {
		return StepAuthenticated
	}
	if !state.Method.Valid() {
		return StepServiceChosen
	}
	if state.Payment == nil {
		return StepPaymentChosen
	}
	return StepCompleted
}

// Guard decides where a request for target ends up. It returns target when
// it is reachable, otherwise the current step and redirect=true. It never
// changes state.
func Guard(state State, target Step) (step Step, redirect bool) {
	current := CurrentStep(state)
	if target <= current {
		return target, false
	}
	return current, true
}

// StepGuardViolation is returned by actions whose preconditions are not
// met. It is resolved by redirecting to Redirect and is never shown to the
// user.
type StepGuardViolation struct {
	Required Step
	Redirect Step
}

func (e *StepGuardViolation) Error() string {
	return fmt.Sprintf("step %s required, redirecting to %s", e.Required, e.Redirect)
}

func serviceComplete(s domain.ServiceSelection) bool {
	if s.Amount <= 0 {
		return false
	}
	switch s.Type {
	case domain.FasTag:
		return s.VehicleNumber != "" && s.VehicleType != "" && s.RegisteredMobile != ""
	case domain.Education:
		return s.EnrollmentNumber != ""
	case domain.Ferry:
		return s.BookingNumber != ""
	default:
		return false
	}
}
