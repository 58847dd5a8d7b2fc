package user

import "github.com/google/uuid"

// Actor is the authenticated caller of a use case. A zero Actor is an anonymous guest.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func NewActor(userID uuid.UUID, role Role) Actor {
	return Actor{UserID: userID, Role: role}
}

func (a Actor) IsAnonymous() bool {
	return a.UserID == uuid.Nil
}

func (a Actor) IsStaff() bool {
	return a.Role.AtLeast(RoleStaff)
}

