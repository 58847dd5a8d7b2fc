//go:build unit

package api_test

import (
	"net/http"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	customerActor = user.NewActor(uuid.MustParse("6f1c2a0e-8d5b-4c7e-9a31-2b4d6e8f0a11"), user.RoleCustomer)
	staffActor    = user.NewActor(uuid.MustParse("0b93e6d4-1f27-4a58-b6c9-7d2e3f4a5b60"), user.RoleStaff)
)

const (
	customerToken = "customer-token"
	staffToken    = "staff-token"
)

// fakeAuth resolves the two test tokens to actors. Anything else is anonymous.
func fakeAuth(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer " + customerToken:
			middleware.SetActor(c, customerActor)
		case "Bearer " + staffToken:
			middleware.SetActor(c, staffActor)
		default:
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Access token required"}})
				return
			}
		}
		c.Next()
	}
}
