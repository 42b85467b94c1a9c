package validator

import (
	"log"

	"gigslk_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain validation tags. A failed registration
// is a startup error, not a request error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': self-registration roles. Admin is excluded; admins are
	// only created through the admin surface, validated separately.
	mustRegister("is-user-role", validateUserRole)

	// 'is-admin-role': roles an admin may assign, including admin itself.
	mustRegister("is-admin-role", validateAdminRole)

	// 'is-request-response': terminal gig-request states a host may set.
	mustRegister("is-request-response", validateRequestResponse)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' owns the empty case
	}
	switch models.UserRole(value) {
	case models.UserRoleHost, models.UserRolePerformer:
		return true
	default:
		return false
	}
}

func validateAdminRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleHost, models.UserRolePerformer, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateRequestResponse(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.GigRequestStatus(value) {
	case models.GigRequestStatusAccepted, models.GigRequestStatusRejected:
		return true
	default:
		return false
	}
}
