package integration

import (
	"fmt"
	"testing"

	"todo-api/models"
	"todo-api/tests/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	app := setupApp(t)
	defer app.cleanup()

	owner := app.registerUser(t, "testuser", "testpassword")
	token := app.login(t, "testuser", "testpassword")

	t.Run("FreshUserHasEmptyList", func(t *testing.T) {
		resp := app.server.GET("/todos", token)
		var todos []models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &todos)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	t.Run("CreateReturnsOwnedRecord", func(t *testing.T) {
		resp := app.server.POST("/todos", token, map[string]interface{}{
			"title":       "t",
			"description": "d",
			"completed":   false,
		})
		var created models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &created)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, owner.ID, created.OwnerID)
		assert.Equal(t, "t", created.Title)
		assert.Equal(t, "d", created.Description)
		assert.False(t, created.Completed)
	})

	t.Run("GetReturnsTheRecord", func(t *testing.T) {
		resp := app.server.GET("/todos/1", token)
		var got models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &got)
		assert.Equal(t, 1, got.ID)
	})

	t.Run("PartialUpdateTouchesOnlySentFields", func(t *testing.T) {
		resp := app.server.PutRaw("/todos/1", token, `{"title": "x"}`)
		var updated models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &updated)
		assert.Equal(t, "x", updated.Title)
		assert.Equal(t, "d", updated.Description)
		assert.False(t, updated.Completed)
	})

	t.Run("EmptyPatchChangesNothing", func(t *testing.T) {
		resp := app.server.PutRaw("/todos/1", token, `{}`)
		var updated models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &updated)
		assert.Equal(t, "x", updated.Title)
		assert.Equal(t, "d", updated.Description)
	})

	t.Run("NullVersusEmptyAreDistinctErrors", func(t *testing.T) {
		resp := app.server.PutRaw("/todos/1", token, `{"title": null}`)
		testutils.AssertErrorResponse(t, resp, 422, "title cannot be null")

		resp = app.server.PutRaw("/todos/1", token, `{"title": ""}`)
		testutils.AssertErrorResponse(t, resp, 422, "title is required")
	})

	t.Run("DeleteRemovesTheRecord", func(t *testing.T) {
		resp := app.server.DELETE("/todos/1", token)
		var body map[string]string
		testutils.AssertJSONResponse(t, resp, 200, &body)
		assert.Contains(t, body["message"], "deleted")

		resp = app.server.GET("/todos/1", token)
		testutils.AssertErrorResponse(t, resp, 404, "Todo with id 1 not found")
	})
}

func TestTodoValidationOnCreate(t *testing.T) {
	app := setupApp(t)
	defer app.cleanup()

	app.registerUser(t, "testuser", "testpassword")
	token := app.login(t, "testuser", "testpassword")

	resp := app.server.POST("/todos", token, map[string]interface{}{
		"title":       "   ",
		"description": "d",
	})
	testutils.AssertErrorResponse(t, resp, 422, "title is required")

	resp = app.server.POST("/todos", token, map[string]interface{}{
		"title":       "t",
		"description": "",
	})
	testutils.AssertErrorResponse(t, resp, 422, "description is required")
}

func TestTodoOwnershipIsolation(t *testing.T) {
	app := setupApp(t)
	defer app.cleanup()

	app.registerUser(t, "testuser", "testpassword")
	ownerToken := app.login(t, "testuser", "testpassword")

	app.registerUser(t, "testuser2", "testpassword2")
	otherToken := app.login(t, "testuser2", "testpassword2")

	resp := app.server.POST("/todos", ownerToken, map[string]interface{}{
		"title":       "t",
		"description": "d",
	})
	var created models.Todo
	testutils.AssertJSONResponse(t, resp, 200, &created)

	t.Run("ForeignGetIsIndistinguishableFromMissing", func(t *testing.T) {
		foreign := app.server.GET(fmt.Sprintf("/todos/%d", created.ID), otherToken)
		testutils.AssertErrorResponse(t, foreign, 404, "Todo with id 1 not found")

		missing := app.server.GET("/todos/999", otherToken)
		testutils.AssertErrorResponse(t, missing, 404, "Todo with id 999 not found")
	})

	t.Run("ForeignUpdateAndDeleteFailTheSameWay", func(t *testing.T) {
		resp := app.server.PutRaw(fmt.Sprintf("/todos/%d", created.ID), otherToken, `{"title": "stolen"}`)
		testutils.AssertErrorResponse(t, resp, 404, "Todo with id 1 not found")

		resp = app.server.DELETE(fmt.Sprintf("/todos/%d", created.ID), otherToken)
		testutils.AssertErrorResponse(t, resp, 404, "Todo with id 1 not found")
	})

	t.Run("ListsNeverCross", func(t *testing.T) {
		resp := app.server.GET("/todos", otherToken)
		var todos []models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &todos)
		assert.Empty(t, todos)

		resp = app.server.GET("/todos", ownerToken)
		testutils.AssertJSONResponse(t, resp, 200, &todos)
		require.Len(t, todos, 1)
		assert.Equal(t, created.ID, todos[0].ID)
	})

	t.Run("RecordStillIntactForOwner", func(t *testing.T) {
		resp := app.server.GET(fmt.Sprintf("/todos/%d", created.ID), ownerToken)
		var got models.Todo
		testutils.AssertJSONResponse(t, resp, 200, &got)
		assert.Equal(t, "t", got.Title)
	})
}
