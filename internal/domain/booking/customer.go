package booking

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer is either a signed-in user or a guest identified by contact details.
type Customer struct {
	userID *uuid.UUID
	name   string
	email  string
	phone  string
}

func NewCustomer(userID *uuid.UUID, name, email, phone string) (Customer, error) {
	c := Customer{
		userID: userID,
		name:   strings.TrimSpace(name),
		email:  strings.TrimSpace(email),
		phone:  strings.TrimSpace(phone),
	}
	if userID == nil && (c.name == "" || c.email == "" || c.phone == "") {
		return Customer{}, ErrCustomerIncomplete
	}
	if c.email != "" && !emailPattern.MatchString(c.email) {
		return Customer{}, ErrInvalidEmail
	}
	return c, nil
}

func ReconstructCustomer(userID *uuid.UUID, name, email, phone string) Customer {
	return Customer{userID: userID, name: name, email: email, phone: phone}
}

func (c Customer) UserID() *uuid.UUID {
	return c.userID
}

func (c Customer) IsGuest() bool {
	return c.userID == nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

func (c Customer) Phone() string {
	return c.phone
}

func (c Customer) IsUser(id uuid.UUID) bool {
	return c.userID != nil && *c.userID == id
}
