package booking

// Reason is a code from the fixed catalog shown to customers on rejection
// or cancellation.
type Reason string

const (
	ReasonVehicleUnavailable  Reason = "vehicle_unavailable"
	ReasonDocumentsIncomplete Reason = "documents_incomplete"
	ReasonDocumentsUnreadable Reason = "documents_unreadable"
	ReasonLicenceInvalid      Reason = "licence_invalid"
	ReasonIdentityUnverified  Reason = "identity_unverified"
	ReasonEligibilityNotMet   Reason = "eligibility_not_met"
	ReasonPaymentIssue        Reason = "payment_issue"
	ReasonPaymentRefunded     Reason = "payment_refunded"
	ReasonCustomerRequest     Reason = "customer_request"
	ReasonOther               Reason = "other"
)

var reasonMessages = map[Reason]string{
	ReasonVehicleUnavailable:  "The selected vehicle is no longer available for your dates.",
	ReasonDocumentsIncomplete: "Some of the required documents are missing.",
	ReasonDocumentsUnreadable: "We could not read one or more of your documents. Please upload clearer copies.",
	ReasonLicenceInvalid:      "Your driving licence could not be validated.",
	ReasonIdentityUnverified:  "We were unable to verify your identity.",
	ReasonEligibilityNotMet:   "Your booking does not meet our eligibility criteria.",
	ReasonPaymentIssue:        "There was a problem with your payment.",
	ReasonPaymentRefunded:     "Your payment has been refunded.",
	ReasonCustomerRequest:     "The booking was cancelled at your request.",
	ReasonOther:               "Please contact us for more details.",
}

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	_, ok := reasonMessages[r]
	return ok
}

func (r Reason) Message() string {
	return reasonMessages[r]
}

func ParseReason(raw string) (Reason, error) {
	r := Reason(raw)
	if !r.IsValid() {
		return "", ErrUnknownReason
	}
	return r, nil
}
