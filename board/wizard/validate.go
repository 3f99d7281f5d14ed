package wizard

import (
	"path/filepath"
	"strings"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// MaxResumeSize is the resume upload limit
const MaxResumeSize = 5 << 20 // 5 MiB

// Accepted resume formats, checked against both the declared
// content-type and the filename extension. Passing either check is
// enough.
var (
	acceptedResumeTypes = map[string]bool{
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	}
	acceptedResumeExtensions = map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
	}
)

// FieldError is one field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateStep runs the named step's field checks
func (s *Session) validateStep(kind StepKind) []FieldError {
	switch kind {
	case StepIdentity:
		return s.validateIdentity()
	case StepContact:
		return s.validateContact()
	case StepQuestions:
		return s.validateQuestions()
	case StepResume:
		return s.validateResume()
	}
	return nil
}

// ValidateAll runs the full composed-form validation at submission time
func (s *Session) ValidateAll() []FieldError {
	var errs []FieldError
	errs = append(errs, s.validateIdentity()...)
	errs = append(errs, s.validateContact()...)
	errs = append(errs, s.validateQuestions()...)
	errs = append(errs, s.validateResume()...)
	return errs
}

func (s *Session) validateIdentity() []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(s.Fields.FullName)) < 2 {
		errs = append(errs, FieldError{Field: "full_name", Message: "Full name must be at least 2 characters"})
	}
	if !kernel.Email(s.Fields.Email).IsValid() {
		errs = append(errs, FieldError{Field: "email", Message: "Enter a valid email address"})
	}
	return errs
}

func (s *Session) validateContact() []FieldError {
	var errs []FieldError
	if !s.Fields.Country.IsValid() {
		errs = append(errs, FieldError{Field: "country", Message: "Select a country"})
	}
	if StripPhoneDigits(s.Fields.LocalPhone) == "" {
		errs = append(errs, FieldError{Field: "local_phone", Message: "Enter a phone number"})
	}
	if strings.TrimSpace(s.Fields.LinkedIn) == "" {
		errs = append(errs, FieldError{Field: "linkedin", Message: "LinkedIn profile is required"})
	}
	return errs
}

// validateQuestions blocks advancement while any required question has
// no answer or the type's empty sentinel
func (s *Session) validateQuestions() []FieldError {
	var errs []FieldError
	for _, q := range s.Questions {
		if !q.Required {
			continue
		}
		answer, ok := s.Answers[q.ID]
		if !ok || answer.IsEmpty() {
			errs = append(errs, FieldError{Field: string(q.ID), Message: "This question is required"})
		}
	}
	return errs
}

func (s *Session) validateResume() []FieldError {
	return ValidateResumeFile(s.Resume)
}

// ValidateResumeFile produces three distinct errors: missing, oversize
// and wrong type
func ValidateResumeFile(r *ResumeFile) []FieldError {
	if r == nil || r.Size == 0 {
		return []FieldError{{Field: "resume", Message: "A resume file is required"}}
	}
	if r.Size > MaxResumeSize {
		return []FieldError{{Field: "resume", Message: "Resume must be 5 MiB or smaller"}}
	}
	if !acceptedResumeFormat(r.Filename, r.ContentType) {
		return []FieldError{{Field: "resume", Message: "Resume must be a PDF, DOC or DOCX file"}}
	}
	return nil
}

// acceptedResumeFormat passes when either the declared content-type or
// the filename extension matches the accepted set
func acceptedResumeFormat(filename, contentType string) bool {
	if acceptedResumeTypes[strings.ToLower(contentType)] {
		return true
	}
	return acceptedResumeExtensions[strings.ToLower(filepath.Ext(filename))]
}
