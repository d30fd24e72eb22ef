package common

import "errors"

var (
	ErrInvalidRational  = errors.New("invalid rational zero denominator")
	ErrParse            = errors.New("invalid rational format")
	ErrEncodingOverflow = errors.New("rational magnitude exceeds encoding limit")
)
