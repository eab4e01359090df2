// internal/model/error.go
package model

// ErrorKind は呼び出し元へ返すエラーの種別です。
// 文字列は識別子のみで、利用者向けのメッセージは webutil 側で組み立てます。
type ErrorKind string

func (k ErrorKind) Error() string {
	return string(k)
}

// アプリケーション固有のエラー
const (
	ErrUnauthenticated      ErrorKind = "unauthenticated"
	ErrForbidden            ErrorKind = "forbidden"
	ErrNotFound             ErrorKind = "not_found"
	ErrDuplicateCategory    ErrorKind = "duplicate_category"
	ErrDuplicateTranslation ErrorKind = "duplicate_translation"
	ErrNoChange             ErrorKind = "no_change"
	ErrPasswordMismatch     ErrorKind = "password_mismatch"
	ErrPasswordTooShort     ErrorKind = "password_too_short"
	ErrDuplicateEmail       ErrorKind = "duplicate_email"
	ErrInvalidCredentials   ErrorKind = "invalid_credentials"
	ErrInvalidInput         ErrorKind = "invalid_input"
	ErrInternalServer       ErrorKind = "internal_server_error"
)

// ErrorDetail はAPIエラーレスポンスの中身です
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はプレゼンテーション層で組み立てるエラーです。
// Err に元の ErrorKind を保持し、HTTPステータスの判定に使います。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Err.Error()
	}
	return e.Detail.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}
