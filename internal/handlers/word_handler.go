package handlers

import (
	"net/http"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/service"
	"maori_dictionary/internal/webutil"

	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
	guard   service.Guard
}

func NewWordHandler(s service.WordService, g service.Guard) *WordHandler {
	return &WordHandler{service: s, guard: g}
}

// GetWords は単語一覧を返します。?category_id= を指定するとそのカテゴリの単語 (maori 昇順) だけを返す。
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var (
		words []*model.Word
		err   error
	)
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "category_id is not a valid id", "category_id", model.ErrInvalidInput))
			return
		}
		words, err = h.service.ListWordsByCategory(r.Context(), categoryID)
	} else {
		words, err = h.service.ListWords(r.Context())
	}
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は単語と作成者を返します
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	wordID, err := uuidParam(r, "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.GetWordDetail(r.Context(), wordID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	identity := middleware.IdentityFromContext(r.Context())
	if err := service.RequireTeacher(r.Context(), identity, "create_word"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateWordRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create word request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.guard.CreateWord(r.Context(), identity, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// PutWord は maori / english / definition / level を置き換えます。カテゴリは変更できない。
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	identity := middleware.IdentityFromContext(r.Context())
	if err := service.RequireTeacher(r.Context(), identity, "update_word"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	wordID, err := uuidParam(r, "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateWordRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid update word request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.guard.UpdateWord(r.Context(), identity, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	identity := middleware.IdentityFromContext(r.Context())
	if err := service.RequireTeacher(r.Context(), identity, "delete_word"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	wordID, err := uuidParam(r, "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.guard.DeleteWord(r.Context(), identity, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
