package domain

import "errors"

var (
	ErrTickerNotFound = errors.New("ticker not found in response")
)
