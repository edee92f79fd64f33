package integration

import (
	"net/url"
	"testing"
	"time"

	"todo-api/db"
	"todo-api/internal/auth"
	"todo-api/internal/todo"
	"todo-api/internal/user"
	"todo-api/internal/web"
	"todo-api/middleware"
	"todo-api/models"
	"todo-api/tests/testutils"

	"github.com/stretchr/testify/require"
)

type testApp struct {
	server  *testutils.TestServer
	factory *db.RepositoryFactory
	tokens  *auth.TokenService
	cleanup func()
}

// setupApp wires the whole service over a temp SQLite database, the same way
// main does.
func setupApp(t *testing.T) *testApp {
	factory, cleanupDB := testutils.SetupTestRepositoryFactory(t)
	cfg := testutils.GetTestConfig()
	manager := db.NewManager()

	userRepo := factory.NewUserRepository()
	todoRepo := factory.NewTodoRepository()

	tokenService := auth.NewTokenService(cfg.JwtKey, cfg.TokenTTL)
	authService := auth.NewAuthService(userRepo, tokenService)
	userService := user.NewUserService(userRepo, manager)
	todoService := todo.NewTodoService(todoRepo, manager)

	authHandlers := auth.NewAuthHandlers(authService)
	userHandlers := user.NewUserHandlers(userService)
	todoHandlers := todo.NewTodoHandlers(todoService)
	mw := middleware.NewMiddleware(authService)

	router := web.SetupRoutes(authHandlers, userHandlers, todoHandlers, mw)
	server := testutils.NewTestServer(t, middleware.LoggingMiddleware(router))

	return &testApp{
		server:  server,
		factory: factory,
		tokens:  tokenService,
		cleanup: func() {
			server.Close()
			manager.Stop()
			cleanupDB()
		},
	}
}

// expiredTokenFor signs a token with the test secret that is already past
// its expiry.
func expiredTokenFor(t *testing.T, username string) string {
	cfg := testutils.GetTestConfig()
	expiredIssuer := auth.NewTokenService(cfg.JwtKey, -time.Minute)
	token, err := expiredIssuer.Generate(username)
	require.NoError(t, err)
	return token
}

// registerUser creates an account through the API and returns its record.
func (app *testApp) registerUser(t *testing.T, username, password string) models.User {
	resp := app.server.POST("/users", "", map[string]string{
		"username": username,
		"password": password,
	})

	var created models.User
	testutils.AssertJSONResponse(t, resp, 201, &created)
	return created
}

// login exchanges credentials for a bearer token through the API.
func (app *testApp) login(t *testing.T, username, password string) string {
	resp := app.server.PostForm("/auth/token", url.Values{
		"username": {username},
		"password": {password},
	})

	var token models.Token
	testutils.AssertJSONResponse(t, resp, 200, &token)
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}
