package order

import (
	"fmt"
	"strings"

	"grubdash/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending <──> preparing <──> out-for-delivery ──> delivered
//	   ^──────────────^───────────────^                 (final)
//
// Every state can move to every other state through an explicit update, except
// delivered which is final. Nothing advances automatically. Deletion is only
// allowed from pending.
type Status string

const (
	// Pending is the initial status of a new order.
	Pending Status = "pending"

	// Preparing means the kitchen is working on the order.
	Preparing Status = "preparing"

	// OutForDelivery means the order left the kitchen.
	OutForDelivery Status = "out-for-delivery"

	// Delivered is the final status. A delivered order cannot be changed or deleted.
	Delivered Status = "delivered"
)

// Statuses returns every valid status in workflow order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ParseStatus converts s to a Status, rejecting anything outside the status set.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s belongs to the status set.
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of %s", string(s), statusList()),
	)
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether no transition can leave s.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// ValidateChange reports whether an order in status s may be modified at all.
func (s Status) ValidateChange() error {
	if s.IsFinal() {
		return errs.NewOperationIsNotAllowedErrorWithCause(
			"change order",
			fmt.Errorf("%s is a final status", s),
		)
	}
	return nil
}

// ValidateDelete reports whether an order in status s may be deleted.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewOperationIsNotAllowedErrorWithCause(
			"delete order",
			fmt.Errorf("%s is not %s", s, Pending),
		)
	}
	return nil
}

// TransitionTo returns next when the move from s is allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if err := s.ValidateChange(); err != nil {
		return "", err
	}
	return next, nil
}

func statusList() string {
	names := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
