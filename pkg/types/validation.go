package types

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/arthur-debert/reactspring/pkg/errors"
)

var (
	groupIDChars     = regexp.MustCompile(`^[a-z0-9._-]+$`)
	projectNameChars = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	validatorOnce sync.Once
	validate      *validator.Validate
)

// ValidateGroupID checks a group id against Java package naming conventions.
// The messages are shown to users verbatim by the prompts.
func ValidateGroupID(input string) error {
	groupID := strings.TrimSpace(input)
	if groupID == "" {
		return fmt.Errorf("group ID cannot be empty")
	}
	if !groupIDChars.MatchString(groupID) {
		return fmt.Errorf("group ID must contain only lowercase letters, numbers, dots, dashes, and underscores")
	}
	if strings.HasPrefix(groupID, ".") || strings.HasSuffix(groupID, ".") {
		return fmt.Errorf("group ID cannot start or end with a dot")
	}
	if strings.Contains(groupID, "..") {
		return fmt.Errorf("group ID cannot contain consecutive dots")
	}
	if !strings.Contains(groupID, ".") {
		return fmt.Errorf("group ID should follow reverse domain convention (e.g., com.example)")
	}
	for _, segment := range strings.Split(groupID, ".") {
		if segment == "" {
			return fmt.Errorf("group ID cannot have empty segments")
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("invalid segment %q: package segments cannot start with a number", segment)
		}
	}
	return nil
}

// ValidateProjectName checks a project name, which also becomes the
// destination directory and the default artifact id.
func ValidateProjectName(input string) error {
	name := strings.TrimSpace(input)
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !projectNameChars.MatchString(name) {
		return fmt.Errorf("project name can only contain letters, numbers, dashes, and underscores")
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_") {
		return fmt.Errorf("project name should not start with a dash or underscore")
	}
	return nil
}

// ValidateArtifactID checks an artifact id. It becomes the last package
// segment, so it follows the project name rules.
func ValidateArtifactID(input string) error {
	name := strings.TrimSpace(input)
	if name == "" {
		return fmt.Errorf("artifact ID cannot be empty")
	}
	if !projectNameChars.MatchString(name) {
		return fmt.Errorf("artifact ID can only contain letters, numbers, dashes, and underscores")
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_") {
		return fmt.Errorf("artifact ID should not start with a dash or underscore")
	}
	return nil
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("groupid", func(fl validator.FieldLevel) bool {
			return ValidateGroupID(fl.Field().String()) == nil
		})
		_ = validate.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
			return ValidateProjectName(fl.Field().String()) == nil
		})
		_ = validate.RegisterValidation("artifactid", func(fl validator.FieldLevel) bool {
			return ValidateArtifactID(fl.Field().String()) == nil
		})
	})
	return validate
}

// Validate checks every field of the configuration. The first offending
// field is reported with the user-facing message where one exists.
func (c GenerationConfig) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid generation config")
	}

	fe := fieldErrs[0]
	var msg string
	switch fe.Tag() {
	case "groupid":
		msg = ValidateGroupID(c.GroupID).Error()
	case "projectname":
		msg = ValidateProjectName(c.ProjectName).Error()
	case "artifactid":
		msg = ValidateArtifactID(c.ArtifactID).Error()
	case "oneof":
		msg = fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		msg = fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
	}

	return errors.New(errors.ErrConfigValid, msg).
		WithDetail("field", fe.Field()).
		WithDetail("tag", fe.Tag())
}
