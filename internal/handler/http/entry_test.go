// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEntryAction(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())
	ts.entry.EXPECT().
		Act(gomock.Any(), gomock.Any(), "e1", models.ActionLike, "/feed/home").
		Return(models.ActionResult{Message: "liked", EntryID: "e1", Next: "/feed/home?message=liked&entry=e1#e1"}, nil)

	rec := do(router, http.MethodPost, "/api/entry/e1/like?next=/feed/home", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.ActionResult
	decodeBody(t, rec, &result)
	assert.Equal(t, "liked", result.Message)
	assert.Equal(t, "/feed/home?message=liked&entry=e1#e1", result.Next)
}

func TestEntryAction_Anonymous(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/entry/e1/hide", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEntryAction_UnknownAction(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())
	ts.entry.EXPECT().Act(gomock.Any(), gomock.Any(), "e1", models.EntryAction("star"), "").
		Return(models.ActionResult{}, service.ErrUnknownAction)

	rec := do(router, http.MethodPost, "/api/entry/e1/star", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentAction(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())
	ts.entry.EXPECT().CommentAction(gomock.Any(), gomock.Any(), "e1", "c1", models.ActionUndelete, "").
		Return(models.ActionResult{Message: "commented", EntryID: "e1", CommentID: "c1", Next: "/?message=commented&entry=e1&comment=c1#c1"}, nil)

	rec := do(router, http.MethodPost, "/api/entry/e1/comment/c1/undelete", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ActionResult
	decodeBody(t, rec, &result)
	assert.Equal(t, "c1", result.CommentID)
}

func TestComment(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())
	ts.entry.EXPECT().
		Comment(gomock.Any(), gomock.Any(), models.CommentRequest{EntryID: "e1", Body: "nice", Next: "/e/e1"}).
		Return(models.ActionResult{Message: "commented", EntryID: "e1", CommentID: "c9", Next: "/e/e1?message=commented&entry=e1&comment=c9#c9"}, nil)

	rec := do(router, http.MethodPost, "/api/entry/e1/comment", `{"body":"nice","next":"/e/e1"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ActionResult
	decodeBody(t, rec, &result)
	assert.Equal(t, "c9", result.CommentID)
}

func TestComment_InvalidJSON(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())

	rec := do(router, http.MethodPost, "/api/entry/e1/comment", `{"body":`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorText(t, rec), ErrInvalidJSON.Error())
}

func TestShare(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())
	ts.entry.EXPECT().Share(gomock.Any(), gomock.Any(), models.ShareRequest{Title: "hello", Room: "golang"}).
		Return(models.ActionResult{Message: "shared", EntryID: "new1", Next: "/?message=shared&entry=new1#new1"}, nil)

	rec := do(router, http.MethodPost, "/api/share", `{"title":"hello","room":"golang"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result models.ActionResult
	decodeBody(t, rec, &result)
	assert.Equal(t, "new1", result.EntryID)
}

func TestShare_Invalid(t *testing.T) {
	router, ts := newTestRouter(t)

	ts.expectSession(signedInSession())
	ts.entry.EXPECT().Share(gomock.Any(), gomock.Any(), models.ShareRequest{}).
		Return(models.ActionResult{}, service.ErrInvalidDataProvided)

	rec := do(router, http.MethodPost, "/api/share", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", errorText(t, rec))
}
