package errcode

import "fmt"

// Err is a business error carried to the HTTP layer as a code/message pair.
type Err struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func NewErr(code int, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

// NewCustomErr wraps a free-form message under the generic custom code.
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

func (e *Err) Error() string {
	return fmt.Sprintf("code: %d, msg: %s", e.Code, e.Msg)
}

const (
	CodeOK     = 200
	CodeCustom = 7000

	codeBadParams  = 4000
	codeForbidden  = 4030
	codeNotFound   = 4040
	codeConflict   = 4090
	codeUnexpected = 5000
)

var (
	ErrInvalidParams = NewErr(codeBadParams, "invalid params")
	ErrForbidden     = NewErr(codeForbidden, "forbidden")
	ErrNotFound      = NewErr(codeNotFound, "not found")
	ErrConflict      = NewErr(codeConflict, "conflict")
	ErrUnexpected    = NewErr(codeUnexpected, "server unexpected error")
)
