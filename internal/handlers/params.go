package handlers

import (
	"net/http"

	"maori_dictionary/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// uuidParam は URL パラメータを UUID として取り出します
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", name+" is not a valid id", name, model.ErrInvalidInput)
	}
	return id, nil
}
