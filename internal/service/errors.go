package service

import "errors"

// BusinessError is a rule violation meant for the caller. Handlers answer it
// with a client error; anything else is treated as an infrastructure failure.
type BusinessError string

func (e BusinessError) Error() string { return string(e) }

// IsBusiness reports whether a BusinessError sits anywhere in err's chain.
func IsBusiness(err error) bool {
	var be BusinessError
	return errors.As(err, &be)
}
