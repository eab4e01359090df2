package handlers

import (
	"net/http"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/service"
	"maori_dictionary/internal/webutil"
)

type CategoryHandler struct {
	service service.CategoryService
	guard   service.Guard
}

func NewCategoryHandler(s service.CategoryService, g service.Guard) *CategoryHandler {
	return &CategoryHandler{service: s, guard: g}
}

// GetCategories はカテゴリ一覧 (名前の昇順) を返します
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, categories, logger)
}

// GetCategory はカテゴリと所属する単語を返します
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	categoryID, err := uuidParam(r, "category_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.GetCategoryDetail(r.Context(), categoryID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if detail.Words == nil {
		detail.Words = []*model.Word{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

func (h *CategoryHandler) PostCategory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	identity := middleware.IdentityFromContext(r.Context())
	if err := service.RequireTeacher(r.Context(), identity, "create_category"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateCategoryRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create category request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	category, err := h.guard.CreateCategory(r.Context(), identity, req.Name)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, category, logger)
}

// DeleteCategory はカテゴリを削除します。所属していた単語は削除されない。
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	identity := middleware.IdentityFromContext(r.Context())
	if err := service.RequireTeacher(r.Context(), identity, "delete_category"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	categoryID, err := uuidParam(r, "category_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.guard.DeleteCategory(r.Context(), identity, categoryID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
