package service_test

import (
	"context"
	"testing"

	"maori_dictionary/internal/model"
	"maori_dictionary/internal/service"
	"maori_dictionary/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuard_DeniesBeforeReachingServices(t *testing.T) {
	learner := &model.Identity{UserID: uuid.New(), Email: "tama@example.com", Role: model.RoleLearner}

	testCases := []struct {
		name     string
		identity *model.Identity
		wantErr  error
	}{
		{"not logged in", nil, model.ErrUnauthenticated},
		{"learner", learner, model.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// 期待値を設定しないので、サービスが呼ばれればテストが失敗する
			wordService := mocks.NewMockWordService(t)
			categoryService := mocks.NewMockCategoryService(t)
			guard := service.NewGuard(wordService, categoryService)
			ctx := context.Background()

			_, err := guard.CreateWord(ctx, tc.identity, &model.CreateWordRequest{Maori: "kau", English: "cow"})
			assert.ErrorIs(t, err, tc.wantErr)
			_, err = guard.UpdateWord(ctx, tc.identity, uuid.New(), &model.UpdateWordRequest{Maori: "kau", English: "cow"})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, guard.DeleteWord(ctx, tc.identity, uuid.New()), tc.wantErr)
			_, err = guard.CreateCategory(ctx, tc.identity, "Animals")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, guard.DeleteCategory(ctx, tc.identity, uuid.New()), tc.wantErr)
		})
	}
}

func TestGuard_TeacherIsForwarded(t *testing.T) {
	ctx := context.Background()
	teacher := &model.Identity{UserID: uuid.New(), Email: "mere@example.com", Role: model.RoleTeacher}
	wordID := uuid.New()
	categoryID := uuid.New()

	wordService := mocks.NewMockWordService(t)
	categoryService := mocks.NewMockCategoryService(t)
	guard := service.NewGuard(wordService, categoryService)

	createReq := &model.CreateWordRequest{Maori: "kau", English: "cow", CategoryID: categoryID}
	wordService.On("CreateWord", mock.Anything, teacher.UserID, createReq).
		Return(&model.Word{WordID: wordID, UserID: teacher.UserID}, nil).Once()

	updateReq := &model.UpdateWordRequest{Maori: "kau", English: "cattle"}
	wordService.On("UpdateWord", mock.Anything, wordID, teacher.UserID, updateReq).
		Return(&model.Word{WordID: wordID, English: "cattle"}, nil).Once()

	wordService.On("DeleteWord", mock.Anything, wordID).Return(nil).Once()

	// 画面から作成したカテゴリは user_created = true
	categoryService.On("CreateCategory", mock.Anything, "Animals", true).
		Return(&model.Category{CategoryID: categoryID, Name: "Animals", UserCreated: true}, nil).Once()
	categoryService.On("DeleteCategory", mock.Anything, categoryID).Return(model.ErrNotFound).Once()

	word, err := guard.CreateWord(ctx, teacher, createReq)
	require.NoError(t, err)
	assert.Equal(t, teacher.UserID, word.UserID)

	word, err = guard.UpdateWord(ctx, teacher, wordID, updateReq)
	require.NoError(t, err)
	assert.Equal(t, "cattle", word.English)

	require.NoError(t, guard.DeleteWord(ctx, teacher, wordID))

	category, err := guard.CreateCategory(ctx, teacher, "Animals")
	require.NoError(t, err)
	assert.True(t, category.UserCreated)

	assert.ErrorIs(t, guard.DeleteCategory(ctx, teacher, categoryID), model.ErrNotFound, "service errors pass through unchanged")
}
