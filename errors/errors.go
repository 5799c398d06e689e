package errors

import (
	stderrors "errors"

	perrors "github.com/pingcap/errors"
)

const (
	ErrCodePanic         = 1000
	ErrCodeNilReference  = 2000
	ErrCodeCopyReference = 3000
	ErrCodeLogConfig     = 4000
)

type CodeError struct {
	Code uint16
	error
}

func NewCodeError(code uint16, err error) error {
	return &CodeError{
		Code:  code,
		error: err,
	}
}

func NewCodeErrorMessage(code uint16, message string) error {
	return &CodeError{
		Code:  code,
		error: perrors.New(message),
	}
}

func (e *CodeError) Unwrap() error {
	return e.error
}

// Recovered 将回调中 recover 得到的值包装为 ErrCodePanic 错误
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return NewCodeError(ErrCodePanic, perrors.Annotate(err, "callback panic"))
	}
	return NewCodeError(ErrCodePanic, perrors.Errorf("callback panic: %v", r))
}

// CodeOf 沿错误链查找 CodeError，未找到返回 0
func CodeOf(err error) uint16 {
	for err != nil {
		if ce, ok := err.(*CodeError); ok {
			return ce.Code
		}
		next := stderrors.Unwrap(err)
		if next == nil {
			if cause := perrors.Cause(err); cause != err {
				next = cause
			}
		}
		err = next
	}
	return 0
}

var (
	ErrNilReference  = NewCodeErrorMessage(ErrCodeNilReference, "reference property needs a non-nil pointer")
	ErrCopyReference = NewCodeErrorMessage(ErrCodeCopyReference, "reference property can not be copied")
)
