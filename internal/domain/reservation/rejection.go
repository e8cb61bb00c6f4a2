package reservation

import "errors"

type RejectionReason string

const (
	ReasonInvalidDates               RejectionReason = "INVALID_DATES"
	ReasonInvalidRequest             RejectionReason = "INVALID_REQUEST"
	ReasonInvalidCapacity            RejectionReason = "INVALID_CAPACITY"
	ReasonRoomNotAvailable           RejectionReason = "ROOM_NOT_AVAILABLE"
	ReasonForbidden                  RejectionReason = "FORBIDDEN"
	ReasonAlreadyCancelled           RejectionReason = "ALREADY_CANCELLED"
	ReasonCancellationDeadlinePassed RejectionReason = "CANCELLATION_DEADLINE_PASSED"
	ReasonBookingNotEligible         RejectionReason = "BOOKING_NOT_ELIGIBLE"
	ReasonAlreadyReviewed            RejectionReason = "ALREADY_REVIEWED"
)

// Rejection is a business-rule refusal. Its reason doubles as the API error code.
type Rejection struct {
	reason  RejectionReason
	message string
}

func (r *Rejection) Error() string {
	return r.message
}

func (r *Rejection) Reason() RejectionReason {
	return r.reason
}

var (
	ErrInvalidDates               = &Rejection{ReasonInvalidDates, "check-in date must be in the future"}
	ErrInvalidRequest             = &Rejection{ReasonInvalidRequest, "check-out must be after check-in"}
	ErrInvalidCapacity            = &Rejection{ReasonInvalidCapacity, "guests exceed room capacity"}
	ErrRoomNotAvailable           = &Rejection{ReasonRoomNotAvailable, "room is not available for the selected dates"}
	ErrForbidden                  = &Rejection{ReasonForbidden, "not allowed to act on this booking"}
	ErrAlreadyCancelled           = &Rejection{ReasonAlreadyCancelled, "booking is already cancelled"}
	ErrCancellationDeadlinePassed = &Rejection{ReasonCancellationDeadlinePassed, "cancellation must be at least 24 hours before check-in"}
	ErrBookingNotEligible         = &Rejection{ReasonBookingNotEligible, "booking is not eligible for review"}
	ErrAlreadyReviewed            = &Rejection{ReasonAlreadyReviewed, "booking has already been reviewed"}
)

// ReasonOf extracts the rejection reason from anywhere in err's chain.
func ReasonOf(err error) (RejectionReason, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r.reason, true
	}
	return "", false
}
