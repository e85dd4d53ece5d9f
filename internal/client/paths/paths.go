// Package paths is the navigation contract shared by the controller, the
// guards, and the pages.
package paths

import "strings"

const (
	AuthLogin          = "/auth/login"
	AuthRegister       = "/auth/register"
	AuthForgotPassword = "/auth/forgot-password"
	AuthResetPassword  = "/auth/reset-password/:token"

	UserDashboard  = "/dashboard"
	AdminDashboard = "/admin/dashboard"
)

// ResetPasswordFor resolves the reset-password route for a concrete token.
func ResetPasswordFor(token string) string {
	return strings.Replace(AuthResetPassword, ":token", token, 1)
}

// Redirect is the state carried through a guard redirect so the login page
// can restore intent and show context.
type Redirect struct {
	From    string `json:"from"`
	Message string `json:"message,omitempty"`
}
