package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"maori_dictionary/internal/model"
	"maori_dictionary/internal/repository"
	"maori_dictionary/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// DictionaryServiceTestSuite はインメモリSQLite上で各サービスを組み合わせてテストします
type DictionaryServiceTestSuite struct {
	suite.Suite

	ctx             context.Context
	db              *gorm.DB
	authService     service.AuthService
	sessionService  service.SessionService
	categoryService service.CategoryService
	wordService     service.WordService
	guard           service.Guard

	teacher *model.Identity
	learner *model.Identity
}

func TestDictionaryServices(t *testing.T) {
	suite.Run(t, new(DictionaryServiceTestSuite))
}

// SetupTest は各テストの前に新しいDBとサービスを用意します
func (s *DictionaryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
	s.Require().NoError(err)
	s.db = db

	userRepo := repository.NewGormUserRepository()
	wordRepo := repository.NewGormWordRepository()
	s.authService = service.NewAuthService(db, userRepo)
	s.sessionService = service.NewSessionService(db, s.authService, repository.NewGormSessionRepository(), testSecret, "test", time.Hour)
	s.categoryService = service.NewCategoryService(db, repository.NewGormCategoryRepository(), wordRepo)
	s.wordService = service.NewWordService(db, wordRepo, s.authService)
	s.guard = service.NewGuard(s.wordService, s.categoryService)

	s.teacher = s.register("Mere", "Teacher", "mere@example.com", true)
	s.learner = s.register("Tama", "Learner", "tama@example.com", false)
}

func (s *DictionaryServiceTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *DictionaryServiceTestSuite) register(first, last, email string, teacher bool) *model.Identity {
	user, err := s.authService.Register(s.ctx, &model.RegisterRequest{
		FirstName:       first,
		LastName:        last,
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		Teacher:         teacher,
	})
	s.Require().NoError(err)
	return user.Identity()
}

func (s *DictionaryServiceTestSuite) createCategory(name string) *model.Category {
	category, err := s.guard.CreateCategory(s.ctx, s.teacher, name)
	s.Require().NoError(err)
	return category
}

func (s *DictionaryServiceTestSuite) createWord(maori, english string, categoryID uuid.UUID) *model.Word {
	word, err := s.guard.CreateWord(s.ctx, s.teacher, &model.CreateWordRequest{
		Maori:      maori,
		English:    english,
		Definition: "definition of " + english,
		Level:      3,
		CategoryID: categoryID,
	})
	s.Require().NoError(err)
	return word
}

func (s *DictionaryServiceTestSuite) countRows(m interface{}) int64 {
	var count int64
	s.Require().NoError(s.db.Model(m).Count(&count).Error)
	return count
}

// --- Credential Store / Session Authenticator ---

func (s *DictionaryServiceTestSuite) TestRegisterThenAuthenticate() {
	user, err := s.authService.Register(s.ctx, &model.RegisterRequest{
		FirstName:       "  aroha ",
		LastName:        "SMITH",
		Email:           "  Aroha@Example.COM ",
		Password:        "kiaora123",
		ConfirmPassword: "kiaora123",
	})
	s.Require().NoError(err)
	s.Equal("Aroha", user.FirstName)
	s.Equal("Smith", user.LastName)
	s.Equal("aroha@example.com", user.Email)
	s.Equal(model.RoleLearner, user.Role)
	s.NotEqual("kiaora123", user.PasswordHash)

	identity, err := s.authService.Authenticate(s.ctx, "AROHA@example.com  ", "kiaora123")
	s.Require().NoError(err)
	s.Equal(user.UserID, identity.UserID)
	s.Equal("Aroha", identity.FirstName)
	s.False(model.IsTeacher(identity))
}

func (s *DictionaryServiceTestSuite) TestRegisterValidation() {
	testCases := []struct {
		name     string
		password string
		confirm  string
		email    string
		wantErr  error
	}{
		{"password confirmation differs", "password123", "password124", "a@example.com", model.ErrPasswordMismatch},
		{"seven characters is too short", "1234567", "1234567", "b@example.com", model.ErrPasswordTooShort},
		{"eight characters is accepted", "12345678", "12345678", "c@example.com", nil},
		{"length counts characters not bytes", "āēīōūāēī", "āēīōūāēī", "d@example.com", nil},
		{"email is unique regardless of case", "password123", "password123", "MERE@example.com", model.ErrDuplicateEmail},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.authService.Register(s.ctx, &model.RegisterRequest{
				FirstName:       "Test",
				LastName:        "User",
				Email:           tc.email,
				Password:        tc.password,
				ConfirmPassword: tc.confirm,
			})
			if tc.wantErr == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tc.wantErr)
			}
		})
	}
}

func (s *DictionaryServiceTestSuite) TestAuthenticateFailures() {
	_, err := s.authService.Authenticate(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, model.ErrNotFound)

	_, err = s.authService.Authenticate(s.ctx, "mere@example.com", "wrong-password")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *DictionaryServiceTestSuite) TestLoginSessionLifecycle() {
	result, err := s.sessionService.Login(s.ctx, &model.LoginRequest{Email: "Mere@example.com", Password: "password123"})
	s.Require().NoError(err)
	s.NotEmpty(result.Token)
	s.True(model.IsTeacher(result.Identity))

	identity, err := s.sessionService.CurrentIdentity(s.ctx, result.Token)
	s.Require().NoError(err)
	s.Require().NotNil(identity)
	s.Equal(s.teacher.UserID, identity.UserID)
	s.Equal("mere@example.com", identity.Email)
	s.Equal(model.RoleTeacher, identity.Role)

	s.Require().NoError(s.sessionService.Logout(s.ctx, result.Token))
	identity, err = s.sessionService.CurrentIdentity(s.ctx, result.Token)
	s.NoError(err)
	s.Nil(identity, "session is gone after logout")

	s.NoError(s.sessionService.Logout(s.ctx, result.Token), "logout is idempotent")
	s.Zero(s.countRows(&model.Session{}))
}

func (s *DictionaryServiceTestSuite) TestCurrentIdentityRejectsBadTokens() {
	result, err := s.sessionService.Login(s.ctx, &model.LoginRequest{Email: "tama@example.com", Password: "password123"})
	s.Require().NoError(err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forgedToken, err := forged.SignedString([]byte("another-secret"))
	s.Require().NoError(err)

	unknownSession := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unknownToken, err := unknownSession.SignedString([]byte(testSecret))
	s.Require().NoError(err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	s.Require().NoError(err)

	for name, token := range map[string]string{
		"empty":           "",
		"garbage":         "not-a-token",
		"tampered":        result.Token + "x",
		"wrong secret":    forgedToken,
		"unknown session": unknownToken,
		"expired":         expiredToken,
	} {
		identity, err := s.sessionService.CurrentIdentity(s.ctx, token)
		s.NoError(err, name)
		s.Nil(identity, name)
	}
}

func (s *DictionaryServiceTestSuite) TestCurrentIdentityLeavesExpiredSessionRow() {
	result, err := s.sessionService.Login(s.ctx, &model.LoginRequest{Email: "tama@example.com", Password: "password123"})
	s.Require().NoError(err)

	// トークンは有効なまま、セッション行だけを期限切れにする
	s.Require().NoError(s.db.Model(&model.Session{}).Where("1 = 1").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	identity, err := s.sessionService.CurrentIdentity(s.ctx, result.Token)
	s.NoError(err)
	s.Nil(identity)
	s.Equal(int64(1), s.countRows(&model.Session{}), "lookups do not delete sessions")

	deleted, err := s.sessionService.PurgeExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
}

func (s *DictionaryServiceTestSuite) TestPurgeExpiredSessions() {
	shortLived := service.NewSessionService(s.db, s.authService, repository.NewGormSessionRepository(), testSecret, "test", time.Nanosecond)
	_, err := shortLived.Login(s.ctx, &model.LoginRequest{Email: "tama@example.com", Password: "password123"})
	s.Require().NoError(err)
	_, err = s.sessionService.Login(s.ctx, &model.LoginRequest{Email: "mere@example.com", Password: "password123"})
	s.Require().NoError(err)

	time.Sleep(10 * time.Millisecond)
	deleted, err := s.sessionService.PurgeExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
	s.Equal(int64(1), s.countRows(&model.Session{}))
}

// --- Category Registry ---

func (s *DictionaryServiceTestSuite) TestCategoryNamesAreNormalizedAndUnique() {
	category := s.createCategory("  animals ")
	s.Equal("Animals", category.Name)
	s.True(category.UserCreated)

	_, err := s.guard.CreateCategory(s.ctx, s.teacher, "ANIMALS")
	s.ErrorIs(err, model.ErrDuplicateCategory)

	_, err = s.guard.CreateCategory(s.ctx, s.teacher, "   ")
	s.ErrorIs(err, model.ErrInvalidInput)

	s.Equal(int64(1), s.countRows(&model.Category{}))
}

func (s *DictionaryServiceTestSuite) TestSeedCategoriesSkipsExisting() {
	s.createCategory("Animals")

	created, err := s.categoryService.SeedCategories(s.ctx, []string{"Food", "animals", "Sport", ""})
	s.Require().NoError(err)
	s.Equal(2, created)

	created, err = s.categoryService.SeedCategories(s.ctx, []string{"Food", "Sport"})
	s.Require().NoError(err)
	s.Zero(created)

	categories, err := s.categoryService.ListCategories(s.ctx)
	s.Require().NoError(err)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
		if c.Name != "Animals" {
			s.False(c.UserCreated, "seeded categories are system categories")
		}
	}
	s.Equal([]string{"Animals", "Food", "Sport"}, names)
}

func (s *DictionaryServiceTestSuite) TestCategoryDetailListsWordsByMaori() {
	category := s.createCategory("Animals")
	s.createWord("manu", "bird", category.CategoryID)
	s.createWord("kau", "cow", category.CategoryID)

	detail, err := s.categoryService.GetCategoryDetail(s.ctx, category.CategoryID)
	s.Require().NoError(err)
	s.Equal("Animals", detail.Category.Name)
	s.Require().Len(detail.Words, 2)
	s.Equal("kau", detail.Words[0].Maori)
	s.Equal("manu", detail.Words[1].Maori)

	_, err = s.categoryService.GetCategoryDetail(s.ctx, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *DictionaryServiceTestSuite) TestDeleteCategoryOrphansWords() {
	category := s.createCategory("Animals")
	word := s.createWord("kau", "cow", category.CategoryID)

	s.Require().NoError(s.guard.DeleteCategory(s.ctx, s.teacher, category.CategoryID))

	_, err := s.categoryService.GetCategory(s.ctx, category.CategoryID)
	s.ErrorIs(err, model.ErrNotFound)

	stored, err := s.wordService.GetWord(s.ctx, word.WordID)
	s.Require().NoError(err)
	s.Equal(category.CategoryID, stored.CategoryID, "the word keeps its category reference")

	words, err := s.wordService.ListWordsByCategory(s.ctx, category.CategoryID)
	s.Require().NoError(err)
	s.Len(words, 1)

	s.ErrorIs(s.guard.DeleteCategory(s.ctx, s.teacher, category.CategoryID), model.ErrNotFound)
}

// --- Word Repository ---

// カテゴリ "Animals" に "kau" / "Cow " を登録し、同じ english の再登録が拒否される
func (s *DictionaryServiceTestSuite) TestAnimalsKauScenario() {
	category := s.createCategory("Animals")

	word, err := s.guard.CreateWord(s.ctx, s.teacher, &model.CreateWordRequest{
		Maori:      "kau",
		English:    "Cow ",
		Definition: "A farm animal",
		Level:      15,
		CategoryID: category.CategoryID,
	})
	s.Require().NoError(err)
	s.Equal("kau", word.Maori)
	s.Equal("cow", word.English)
	s.Equal(10, word.Level)
	s.Equal(model.NoImage, word.Image)
	s.Equal(s.teacher.UserID, word.UserID)
	s.False(word.ModifiedAt.IsZero())

	_, err = s.guard.CreateWord(s.ctx, s.teacher, &model.CreateWordRequest{
		Maori:      "kau tāne",
		English:    "COW",
		CategoryID: category.CategoryID,
	})
	s.ErrorIs(err, model.ErrDuplicateTranslation)

	words, err := s.wordService.ListWordsByCategory(s.ctx, category.CategoryID)
	s.Require().NoError(err)
	s.Len(words, 1)
}

func (s *DictionaryServiceTestSuite) TestCreateWordClampsLevel() {
	category := s.createCategory("Numbers")
	for _, tc := range []struct {
		english string
		level   int
		want    int
	}{
		{"one", -5, 0},
		{"two", 15, 10},
		{"three", 7, 7},
	} {
		word, err := s.guard.CreateWord(s.ctx, s.teacher, &model.CreateWordRequest{
			Maori:      "tahi " + tc.english,
			English:    tc.english,
			Level:      tc.level,
			CategoryID: category.CategoryID,
		})
		s.Require().NoError(err)
		s.Equal(tc.want, word.Level, tc.english)
	}
}

func (s *DictionaryServiceTestSuite) TestUpdateWordWithIdenticalValuesIsNoChange() {
	category := s.createCategory("Animals")
	word := s.createWord("kau", "cow", category.CategoryID)

	var before model.Word
	s.Require().NoError(s.db.Where("word_id = ?", word.WordID).First(&before).Error)

	for _, req := range []*model.UpdateWordRequest{
		{Maori: "kau", English: "cow", Definition: "definition of cow", Level: 3},
		{Maori: " KAU ", English: "Cow ", Definition: " definition of cow ", Level: 3},
	} {
		_, err := s.guard.UpdateWord(s.ctx, s.otherTeacher(), word.WordID, req)
		s.ErrorIs(err, model.ErrNoChange)
	}

	var after model.Word
	s.Require().NoError(s.db.Where("word_id = ?", word.WordID).First(&after).Error)
	s.Equal(before.Maori, after.Maori)
	s.Equal(before.English, after.English)
	s.Equal(before.Definition, after.Definition)
	s.Equal(before.Level, after.Level)
	s.Equal(s.teacher.UserID, after.UserID, "rejected update keeps the original author")
	s.True(before.ModifiedAt.Equal(after.ModifiedAt))
}

// otherTeacher は更新者が変わることを確かめるための別の teacher を作ります
func (s *DictionaryServiceTestSuite) otherTeacher() *model.Identity {
	return s.register("Hemi", "Second", "hemi-"+uuid.NewString()+"@example.com", true)
}

func (s *DictionaryServiceTestSuite) TestUpdateWordRefreshesAuthorAndKeepsCategory() {
	category := s.createCategory("Animals")
	word := s.createWord("kau", "cow", category.CategoryID)
	editor := s.otherTeacher()

	time.Sleep(5 * time.Millisecond)
	updated, err := s.guard.UpdateWord(s.ctx, editor, word.WordID, &model.UpdateWordRequest{
		Maori:      "kau",
		English:    "cow",
		Definition: "definition of cow",
		Level:      -2,
	})
	s.Require().NoError(err)
	s.Equal(0, updated.Level)
	s.Equal(editor.UserID, updated.UserID)
	s.Equal(category.CategoryID, updated.CategoryID)
	s.True(updated.ModifiedAt.After(word.ModifiedAt))

	detail, err := s.wordService.GetWordDetail(s.ctx, word.WordID)
	s.Require().NoError(err)
	s.Equal(0, detail.Word.Level)
	s.Equal(category.CategoryID, detail.Word.CategoryID)
	s.Require().NotNil(detail.Author)
	s.Equal("Hemi", detail.Author.FirstName)
}

func (s *DictionaryServiceTestSuite) TestUpdateWordEnglishCollision() {
	category := s.createCategory("Animals")
	s.createWord("kau", "cow", category.CategoryID)
	horse := s.createWord("hōiho", "horse", category.CategoryID)

	_, err := s.guard.UpdateWord(s.ctx, s.teacher, horse.WordID, &model.UpdateWordRequest{
		Maori:   "hōiho",
		English: " COW",
		Level:   3,
	})
	s.ErrorIs(err, model.ErrDuplicateTranslation)

	stored, err := s.wordService.GetWord(s.ctx, horse.WordID)
	s.Require().NoError(err)
	s.Equal("horse", stored.English)

	_, err = s.guard.UpdateWord(s.ctx, s.teacher, uuid.New(), &model.UpdateWordRequest{Maori: "a", English: "b"})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *DictionaryServiceTestSuite) TestDeleteWord() {
	category := s.createCategory("Animals")
	word := s.createWord("kau", "cow", category.CategoryID)

	s.Require().NoError(s.guard.DeleteWord(s.ctx, s.teacher, word.WordID))
	_, err := s.wordService.GetWord(s.ctx, word.WordID)
	s.ErrorIs(err, model.ErrNotFound)
	s.ErrorIs(s.guard.DeleteWord(s.ctx, s.teacher, word.WordID), model.ErrNotFound)
}

func (s *DictionaryServiceTestSuite) TestGetWordDetailWithoutAuthor() {
	category := s.createCategory("Animals")
	word := s.createWord("kau", "cow", category.CategoryID)
	s.Require().NoError(s.db.Where("user_id = ?", s.teacher.UserID).Delete(&model.User{}).Error)

	detail, err := s.wordService.GetWordDetail(s.ctx, word.WordID)
	s.Require().NoError(err)
	s.Nil(detail.Author)
}

// --- Authorization Guard ---

func (s *DictionaryServiceTestSuite) TestDeniedMutationsHaveNoSideEffects() {
	category := s.createCategory("Animals")
	word := s.createWord("kau", "cow", category.CategoryID)

	for _, tc := range []struct {
		name     string
		identity *model.Identity
		wantErr  error
	}{
		{"anonymous", nil, model.ErrUnauthenticated},
		{"learner", s.learner, model.ErrForbidden},
	} {
		s.Run(tc.name, func() {
			_, err := s.guard.CreateWord(s.ctx, tc.identity, &model.CreateWordRequest{Maori: "kurī", English: "dog", CategoryID: category.CategoryID})
			s.ErrorIs(err, tc.wantErr)
			_, err = s.guard.UpdateWord(s.ctx, tc.identity, word.WordID, &model.UpdateWordRequest{Maori: "kau", English: "cattle", Level: 1})
			s.ErrorIs(err, tc.wantErr)
			s.ErrorIs(s.guard.DeleteWord(s.ctx, tc.identity, word.WordID), tc.wantErr)
			_, err = s.guard.CreateCategory(s.ctx, tc.identity, "Food")
			s.ErrorIs(err, tc.wantErr)
			s.ErrorIs(s.guard.DeleteCategory(s.ctx, tc.identity, category.CategoryID), tc.wantErr)
		})
	}

	s.Equal(int64(1), s.countRows(&model.Word{}))
	s.Equal(int64(1), s.countRows(&model.Category{}))
	stored, err := s.wordService.GetWord(s.ctx, word.WordID)
	s.Require().NoError(err)
	s.Equal("cow", stored.English)
}
