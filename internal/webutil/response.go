package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"maori_dictionary/internal/model"

	"github.com/go-playground/validator/v10"
)

// errorEntry はエラー種別ごとのHTTPステータスと利用者向けメッセージ
type errorEntry struct {
	status  int
	code    string
	message string
	field   string
}

// errorTable はエラー種別を利用者向けの表現に変換する唯一の場所です。
// NotFound と InvalidCredentials はログイン時には同じ文言にまとめる (HandleLoginError)。
var errorTable = map[model.ErrorKind]errorEntry{
	model.ErrUnauthenticated:      {http.StatusUnauthorized, "NOT_LOGGED_IN", "Not logged in", ""},
	model.ErrForbidden:            {http.StatusForbidden, "NOT_TEACHER", "Not teacher", ""},
	model.ErrNotFound:             {http.StatusNotFound, "NOT_FOUND", "No such record", ""},
	model.ErrDuplicateCategory:    {http.StatusConflict, "DUPLICATE_CATEGORY", "This category already exists", "name"},
	model.ErrDuplicateTranslation: {http.StatusConflict, "DUPLICATE_TRANSLATION", "Word already exists", "english"},
	model.ErrNoChange:             {http.StatusUnprocessableEntity, "NO_CHANGE", "Nothing changed", ""},
	model.ErrPasswordMismatch:     {http.StatusBadRequest, "PASSWORD_MISMATCH", "Passwords do not match", "confirm_password"},
	model.ErrPasswordTooShort:     {http.StatusBadRequest, "PASSWORD_TOO_SHORT", "Passwords must be at least 8 characters", "password"},
	model.ErrDuplicateEmail:       {http.StatusConflict, "DUPLICATE_EMAIL", "Email is already used", "email"},
	model.ErrInvalidCredentials:   {http.StatusUnauthorized, "AUTHENTICATION_FAILED", "Email or password is incorrect", ""},
	model.ErrInvalidInput:         {http.StatusBadRequest, "INVALID_INPUT", "Invalid input", ""},
	model.ErrInternalServer:       {http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An internal server error occurred", ""},
}

var internalError = errorTable[model.ErrInternalServer]

// HandleError はエラーを解釈し、JSONエラーレスポンスを返します。
// AppError はその Detail をそのまま使い、ErrorKind は errorTable で変換する。
// どちらでもないエラーは詳細をログに残し、クライアントには汎用メッセージだけを返す。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		RespondWithJSON(w, MapErrorToStatusCode(err), model.APIErrorResponse{Error: appErr.Detail}, logger)
		return
	}

	entry := lookup(err)
	if entry.status >= http.StatusInternalServerError {
		logger.Error("Unhandled error", "error", err)
	}
	RespondWithJSON(w, entry.status, model.APIErrorResponse{
		Error: model.ErrorDetail{Code: entry.code, Message: entry.message, Field: entry.field},
	}, logger)
}

// HandleLoginError はユーザーが存在しない場合とパスワード誤りを区別せずに返します
func HandleLoginError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, model.ErrNotFound) {
		err = model.ErrInvalidCredentials
	}
	HandleError(w, logger, err)
}

// MapErrorToStatusCode はエラーをHTTPステータスコードに変換します
func MapErrorToStatusCode(err error) int {
	return lookup(err).status
}

func lookup(err error) errorEntry {
	var kind model.ErrorKind
	if errors.As(err, &kind) {
		if entry, ok := errorTable[kind]; ok {
			return entry
		}
	}
	return internalError
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse はバリデーションエラーを翻訳済みメッセージの AppError にまとめます
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
