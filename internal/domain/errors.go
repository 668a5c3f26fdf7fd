package domain

import (
	"fmt"
)

const (
	ErrCodeQuote        string = "QUOTE_ERROR"
	ErrCodeGeneration   string = "GENERATION_ERROR"
	ErrCodeDownload     string = "DOWNLOAD_ERROR"
	ErrCodeStorageWrite string = "STORAGE_WRITE_ERROR"
	ErrCodeConfig       string = "CONFIG_ERROR"
	ErrCodeInternal     string = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"cause"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

var (
	ErrQuote        = &DomainError{Code: ErrCodeQuote, Message: "quote error"}
	ErrGeneration   = &DomainError{Code: ErrCodeGeneration, Message: "image generation error"}
	ErrDownload     = &DomainError{Code: ErrCodeDownload, Message: "image download error"}
	ErrStorageWrite = &DomainError{Code: ErrCodeStorageWrite, Message: "storage write error"}
	ErrConfig       = &DomainError{Code: ErrCodeConfig, Message: "configuration error"}
)
