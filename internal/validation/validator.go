package validation

import (
	"fmt"
	"reflect"
	"strings"

	"elearning/internal/domain"
	"elearning/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/oklog/ulid/v2"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct runs the struct tags of s and converts failures to domain errors.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{domain.NewFieldError("body", err.Error())}
	}

	errs := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, domain.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return errs
}

// ValidateQuizRequest checks the fixed quiz shape: five questions, four
// choices each, exactly one correct choice per question and a sane window.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	errs := v.ValidateStruct(req)

	if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		errs = append(errs, domain.NewFieldError("end_time", "must not be before start_time"))
	}

	for i, q := range req.Questions {
		correct := 0
		for _, c := range q.Choices {
			if c.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			errs = append(errs, domain.NewFieldError(
				fmt.Sprintf("questions[%d].choices", i),
				fmt.Sprintf("exactly one choice must be correct, got %d", correct),
			))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateAnswersRequest checks the answer map of save and submit requests.
// Entries are not checked individually; pairs that match no question or
// choice of the quiz are skipped when the answers are applied.
func (v *Validator) ValidateAnswersRequest(req *dto.AnswersRequest) domain.ValidationErrors {
	if errs := v.ValidateStruct(req); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateGradeRequest checks a grading request against the assignment's
// maximum score.
func (v *Validator) ValidateGradeRequest(req *dto.GradeRequest, totalPoints int) domain.ValidationErrors {
	errs := v.ValidateStruct(req)
	if req.Score != nil && *req.Score > totalPoints {
		errs = append(errs, domain.NewFieldError("score", fmt.Sprintf("must be at most %d", totalPoints)))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateID validates a path or query identifier.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewFieldError(field, "is required")}
	}
	if !IsValidID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// IsValidID checks that s is a canonical ULID.
func IsValidID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// fieldPath drops the struct name from a validator namespace
// ("QuizRequest.questions[0].text" becomes "questions[0].text").
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "len":
		return fmt.Sprintf("must contain exactly %s items", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
