package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"maori_dictionary/internal/model"
	"maori_dictionary/internal/repository"
	"maori_dictionary/internal/service"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DICTIONARY_DOCKER_TESTS=1 のときだけ Docker で PostgreSQL を起動して実行する
const dockerTestsEnv = "DICTIONARY_DOCKER_TESTS"

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv(dockerTestsEnv) != "1" {
		t.Skipf("set %s=1 to run PostgreSQL tests", dockerTestsEnv)
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not construct pool")
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=maori_dictionary",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start PostgreSQL")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge PostgreSQL container: %v", err)
		}
	})

	url := fmt.Sprintf("postgres://user:secret@%s/maori_dictionary?sslmode=disable", resource.GetHostPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var retryErr error
		db, retryErr = repository.NewDB(repository.DriverPostgres, url, logger)
		return retryErr
	})
	require.NoError(t, err, "could not connect to PostgreSQL")
	return db
}

// 同じ english を同時に作成しても成功するのは1件だけで、残りは ErrDuplicateTranslation になる
func TestPostgres_ConcurrentCreateWordWithSameEnglish(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	authService := service.NewAuthService(db, repository.NewGormUserRepository())
	wordService := service.NewWordService(db, repository.NewGormWordRepository(), authService)
	categoryService := service.NewCategoryService(db, repository.NewGormCategoryRepository(), repository.NewGormWordRepository())

	const workers = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	wordErrs := make([]error, workers)
	categoryErrs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, wordErrs[i] = wordService.CreateWord(ctx, uuid.New(), &model.CreateWordRequest{
				Maori:      fmt.Sprintf("kau%d", i),
				English:    "Cow ",
				Level:      3,
				CategoryID: uuid.New(),
			})
			_, categoryErrs[i] = categoryService.CreateCategory(ctx, " animals", true)
		}(i)
	}
	close(start)
	wg.Wait()

	assertExactlyOneSuccess(t, wordErrs, model.ErrDuplicateTranslation)
	assertExactlyOneSuccess(t, categoryErrs, model.ErrDuplicateCategory)

	words, err := wordService.ListWords(ctx)
	require.NoError(t, err)
	assert.Len(t, words, 1)
}

func assertExactlyOneSuccess(t *testing.T, errs []error, duplicate error) {
	t.Helper()
	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, duplicate):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
}
