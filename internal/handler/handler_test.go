package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/devlinkhq/devlink-api/internal/auth"
	"github.com/devlinkhq/devlink-api/internal/github"
	"github.com/devlinkhq/devlink-api/internal/model"
	"github.com/devlinkhq/devlink-api/internal/usecase"
	"github.com/devlinkhq/devlink-api/internal/validation"
)

// Shared test fixtures: stub usecases wired into the real router so tests
// exercise routing, middleware and response shapes end to end.

const testAccountID = "64f1b5c2e4b0a1a2b3c4d5e6"

type stubAuthUsecase struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	account       *model.User
	accountErr    error
}

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterParams) (string, error) {
	return s.registerToken, s.registerErr
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginParams) (string, error) {
	return s.loginToken, s.loginErr
}

func (s *stubAuthUsecase) CurrentAccount(context.Context, string) (*model.User, error) {
	return s.account, s.accountErr
}

type stubProfileUsecase struct {
	profile  *model.Profile
	profiles []*model.Profile
	err      error

	gotOwnerID string
	gotEntryID string
	gotUpsert  usecase.UpsertProfileParams
}

func (s *stubProfileUsecase) Upsert(
	_ context.Context,
	ownerID string,
	params usecase.UpsertProfileParams,
) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	s.gotUpsert = params

	return s.profile, s.err
}

func (s *stubProfileUsecase) GetOwn(_ context.Context, ownerID string) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	return s.profile, s.err
}

func (s *stubProfileUsecase) GetAll(context.Context) ([]*model.Profile, error) {
	return s.profiles, s.err
}

func (s *stubProfileUsecase) GetByOwner(_ context.Context, ownerID string) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	return s.profile, s.err
}

func (s *stubProfileUsecase) DeleteAccount(_ context.Context, ownerID string) error {
	s.gotOwnerID = ownerID
	return s.err
}

func (s *stubProfileUsecase) AddExperience(
	_ context.Context,
	ownerID string,
	_ usecase.ExperienceParams,
) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	return s.profile, s.err
}

func (s *stubProfileUsecase) RemoveExperience(
	_ context.Context,
	ownerID, entryID string,
) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	s.gotEntryID = entryID

	return s.profile, s.err
}

func (s *stubProfileUsecase) AddEducation(
	_ context.Context,
	ownerID string,
	_ usecase.EducationParams,
) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	return s.profile, s.err
}

func (s *stubProfileUsecase) RemoveEducation(
	_ context.Context,
	ownerID, entryID string,
) (*model.Profile, error) {
	s.gotOwnerID = ownerID
	s.gotEntryID = entryID

	return s.profile, s.err
}

type stubRepoLister struct {
	repos []github.Repository
	err   error
}

func (s *stubRepoLister) RecentRepositories(context.Context, string) ([]github.Repository, error) {
	return s.repos, s.err
}

type testEnv struct {
	router  *chi.Mux
	tokens  *auth.TokenService
	auth    *stubAuthUsecase
	profile *stubProfileUsecase
	github  *stubRepoLister
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zerolog.New(os.Stdout).Level(zerolog.Disabled)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	validator, err := validation.New()
	require.NoError(t, err)

	authStub := &stubAuthUsecase{}
	profileStub := &stubProfileUsecase{}
	githubStub := &stubRepoLister{}

	router := NewRouter(
		&logger,
		tokens,
		NewAuthHandler(authStub, validator, &logger),
		NewProfileHandler(profileStub, validator, &logger),
		NewGithubHandler(githubStub, &logger),
	)

	return &testEnv{
		router:  router,
		tokens:  tokens,
		auth:    authStub,
		profile: profileStub,
		github:  githubStub,
	}
}

func (e *testEnv) do(t *testing.T, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if authed {
		token, err := e.tokens.Issue(testAccountID)
		require.NoError(t, err)
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func testProfile() *model.Profile {
	return &model.Profile{
		Status:     "Developer",
		Skills:     []string{"go", "js"},
		Experience: []model.Experience{},
		Education:  []model.Education{},
	}
}
