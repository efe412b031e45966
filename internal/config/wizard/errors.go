package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errProjectIDRequired = errors.New("project identifier is required")
	errProjectIDInvalid  = errors.New("must be 6-30 lowercase letters, digits or hyphens, starting with a letter")
	errOrgRequired       = errors.New("organization is required")
	errOrgInvalid        = errors.New("may only contain letters, digits, '.', '_' and '-'")
	errRepoRequired      = errors.New("repository is required")
	errRepoInvalid       = errors.New("may only contain letters, digits, '.', '_' and '-'")
)
