package application

import "strings"

// Profile names a submission surface. The two surfaces genuinely diverge on
// whether a phone number is required; both contracts are preserved.
type Profile int

const (
	// ProfileModal requires a phone number.
	ProfileModal Profile = iota
	// ProfileInline leaves the phone number optional.
	ProfileInline
)

// MaxResumeBytes is the upload ceiling for a resume file.
const MaxResumeBytes = 5 * 1024 * 1024

// Messages shown to the candidate. Exact wording is part of the UI contract.
const (
	MsgNameRequired  = "Please enter your name"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgPhoneRequired = "Please enter your phone number"
	MsgResumeMissing = "Please upload your resume"
	MsgResumeType    = "Please upload a PDF or Word document"
	MsgResumeTooBig  = "File size must be less than 5MB"
)

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ValidationError is a single human-readable rule violation.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Validate checks the form and resume against the given profile's rules, in
// order, stopping at the first violation. It is pure: no I/O, no state.
func Validate(profile Profile, form Form, resume *Resume) error {
	if strings.TrimSpace(form.Name) == "" {
		return ValidationError(MsgNameRequired)
	}
	if strings.TrimSpace(form.Email) == "" || !strings.Contains(form.Email, "@") {
		return ValidationError(MsgEmailInvalid)
	}
	if profile == ProfileModal && strings.TrimSpace(form.Phone) == "" {
		return ValidationError(MsgPhoneRequired)
	}
	if resume == nil {
		return ValidationError(MsgResumeMissing)
	}
	if !allowedResumeTypes[resume.ContentType] {
		return ValidationError(MsgResumeType)
	}
	if resume.Size > MaxResumeBytes {
		return ValidationError(MsgResumeTooBig)
	}
	return nil
}
