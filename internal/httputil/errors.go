package httputil

import "errors"

var (
	ErrInvalidBody         = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty    = errors.New("the request body must not be empty")
	ErrInvalidUUID         = errors.New("the specified resource ID is not a valid UUID")
	ErrCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	ErrImportConfirmation  = errors.New("the confirmation for the import API call was incorrect")
	ErrNoFilePost          = errors.New("you must send a file to this endpoint")
	ErrWrongFileSuffix     = errors.New("this endpoint only supports files of the following types")
)

// HTTPError is the body of responses that only contain an error.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
