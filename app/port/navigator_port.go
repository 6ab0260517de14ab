package port

//go:generate mockgen -source=navigator_port.go -destination=../mocks/mock_navigator_port.go

// Navigator receives the navigation side effects of auth operations
// (landing view after sign-in, verification view after sign-up, login
// view after sign-out).
type Navigator interface {
	Push(path string)
}

// Navigation targets used by the auth container.
const (
	PathDashboard = "/dashboard"
	PathVerify    = "/auth/verify"
	PathLogin     = "/login"
)
