package catalog

import "errors"

var (
	// -- Database & Operation Failures --
	ErrFailedListProducts = errors.New("failed to list products")
)
