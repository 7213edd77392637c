package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNotificationSvc struct{ mock.Mock }

func (m *mockNotificationSvc) MarkRead(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

func TestMarkRead_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkRead", mock.Anything, []string{"n1", "n2"}).Return(nil)
	h := NewNotificationHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/notifications", "alice", []byte(`["n1","n2"]`))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkRead), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]string{"message": "Notifications marked as read"}, decodeMap(t, rr))
	svc.AssertExpectations(t)
}

func TestMarkRead_NotAnArray(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	h := NewNotificationHandler(svc)

	for _, body := range []string{`{"ids":["n1"]}`, `null`, `"n1"`} {
		r := bearerReq(t, p, http.MethodPost, "/notifications", "alice", []byte(body))
		rr := httptest.NewRecorder()
		serveAuthed(p, http.HandlerFunc(h.MarkRead), rr, r)

		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
	svc.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkRead_EmptyArrayIsAccepted(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkRead", mock.Anything, []string{}).Return(nil)
	h := NewNotificationHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/notifications", "alice", []byte(`[]`))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkRead), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestMarkRead_TooMany(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkRead", mock.Anything, mock.Anything).Return(fmt.Errorf("at most 100: %w", domain.ErrBadRequest))
	h := NewNotificationHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/notifications", "alice", []byte(`["n1"]`))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkRead), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMarkRead_TransactionFailure(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkRead", mock.Anything, mock.Anything).Return(fmt.Errorf("mark: %w",
		&smithy.GenericAPIError{Code: "TransactionCanceledException", Message: "ConditionalCheckFailed"}))
	h := NewNotificationHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/notifications", "alice", []byte(`["n1","missing"]`))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkRead), rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, map[string]string{"error": "TransactionCanceledException"}, decodeMap(t, rr))
}

func TestMarkRead_NoToken(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewNotificationHandler(&mockNotificationSvc{})

	r := httptest.NewRequest(http.MethodPost, "/notifications", nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkRead), rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
