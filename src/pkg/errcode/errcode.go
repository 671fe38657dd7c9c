package errcode

import "fmt"

// Err is an API-facing error with a stable code.
type Err struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func NewErr(code int, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

// NewCustomErr keeps the generic custom code and carries a specific message.
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

func (e *Err) Error() string {
	return fmt.Sprintf("code: %d, msg: %s", e.Code, e.Msg)
}

const (
	CodeOK                = 200
	CodeCustom            = 4000
	CodeInvalidParams     = 4001
	CodeUnauthorized      = 4003
	CodeInsufficientFunds = 4005
	CodeNoMatchFound      = 4040
	CodeInternal          = 5000
)

var (
	ErrInvalidParams     = NewErr(CodeInvalidParams, "invalid params")
	ErrUnauthorized      = NewErr(CodeUnauthorized, "unauthorized")
	ErrInsufficientFunds = NewErr(CodeInsufficientFunds, "insufficient funds")
	ErrNoMatchFound      = NewErr(CodeNoMatchFound, "no match found")
	ErrInternal          = NewErr(CodeInternal, "internal error")
)
