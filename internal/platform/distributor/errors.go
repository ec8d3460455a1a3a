package distributor

import "errors"

var (
	ErrDistributorNotFound = errors.New("distributor not found")
	ErrInvalidID           = errors.New("invalid distributor ID")
)
