package application

import "errors"

var ErrTransport = errors.New("transport error")
var ErrMalformedResponse = errors.New("malformed quotes response")
var ErrUnknownMatchMode = errors.New("unknown match mode")
