package errorx

import (
	"errors"
	"net/http"
)

// Kind 错误分类，对外只暴露 Msg，不暴露 cause
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidRequestBody
	KindMissingFields
	KindInvalidPublicKey
	KindInvalidSecretKey
	KindInvalidBase64
	KindInvalidSignatureFormat
	KindInstructionBuildFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequestBody:
		return "InvalidRequestBody"
	case KindMissingFields:
		return "MissingFields"
	case KindInvalidPublicKey:
		return "InvalidPublicKey"
	case KindInvalidSecretKey:
		return "InvalidSecretKey"
	case KindInvalidBase64:
		return "InvalidBase64"
	case KindInvalidSignatureFormat:
		return "InvalidSignatureFormat"
	case KindInstructionBuildFailed:
		return "InstructionBuildFailed"
	default:
		return "Unknown"
	}
}

type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 按 Kind 比较，errors.Is(err, ErrMissingFields) 对任意同类错误成立
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Wrap 保留同类错误的对外消息，附加内部 cause（仅用于日志）
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Msg: e.Msg, cause: cause}
}

var (
	ErrInvalidRequestBody     = &Error{Kind: KindInvalidRequestBody, Msg: "Invalid request body"}
	ErrMissingFields          = &Error{Kind: KindMissingFields, Msg: "Missing required fields"}
	ErrInvalidPublicKey       = &Error{Kind: KindInvalidPublicKey, Msg: "Invalid public key"}
	ErrInvalidSecretKey       = &Error{Kind: KindInvalidSecretKey, Msg: "Invalid secret key"}
	ErrInvalidBase64          = &Error{Kind: KindInvalidBase64, Msg: "Invalid base64 signature"}
	ErrInvalidSignatureFormat = &Error{Kind: KindInvalidSignatureFormat, Msg: "Invalid signature format"}
	ErrInstructionBuildFailed = &Error{Kind: KindInstructionBuildFailed, Msg: "Failed to create instruction"}
)

// BuildFailed 构建指令失败，msg 区分具体指令类型（如 "Failed to create mint instruction"）
func BuildFailed(msg string, cause error) *Error {
	return &Error{Kind: KindInstructionBuildFailed, Msg: msg, cause: cause}
}

const internalMsg = "Internal server error"

// StatusOf 所有业务错误一律 400；非 errorx 错误视为内部错误
func StatusOf(err error) int {
	if KindOf(err) == KindUnknown {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PublicMessage 返回可直接写入响应的消息，内部错误细节不外泄
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return internalMsg
}

// Detail 日志用：对外消息 + 内部 cause
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.cause != nil {
		return e.Msg + ": " + e.cause.Error()
	}
	return err.Error()
}
