package services

import "errors"

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrInternalError    = errors.New("internal server error")

	// Auth specific errors
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrConsentRequired    = errors.New("consent is required for student registration")
	ErrInvalidPhone       = errors.New("phone number must contain exactly 10 digits")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// Roadmap specific errors
	ErrRoadmapNotFound     = errors.New("roadmap not found")
	ErrItemNotFound        = errors.New("roadmap item not found")
	ErrRoadmapLimitReached = errors.New("roadmap limit reached - delete an existing roadmap first")
	ErrSubmissionRequired  = errors.New("a submission link is required to complete a project")

	// HR specific errors
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidTarget     = errors.New("operation only applies to student accounts")
)

// ===== ERROR CLASSIFIERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRoadmapNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrCandidateNotFound)
}

// IsValidation checks if error represents a rejected request payload.
// A taken email counts; clients see it as a bad request, not a conflict.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrConsentRequired) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrSubmissionRequired) ||
		errors.Is(err, ErrInvalidTarget)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrRoadmapLimitReached)
}

// IsForbidden checks if error represents an authorization failure
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
