package lint

import "errors"

var (
	ErrUnknownRule        = errors.New("unknown rule")
	ErrUnknownExtends     = errors.New("unknown shared configuration")
	ErrCircularExtends    = errors.New("circular extends")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrInvalidCondition   = errors.New("invalid condition")
	ErrInvalidValue       = errors.New("invalid rule value")
	ErrInvalidRuleTuple   = errors.New("rule configuration must be an array of 1 to 3 elements")
	ErrMissingRuleSetting = errors.New("missing rule value")
)
