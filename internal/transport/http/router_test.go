package http

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Evanshango/chatty-backend/internal/config"
	"github.com/Evanshango/chatty-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/Evanshango/chatty-backend/internal/infrastructure/jwt"
	s3infra "github.com/Evanshango/chatty-backend/internal/infrastructure/s3"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyDynamo answers every read with nothing and accepts every write.
type emptyDynamo struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
}

func (d *emptyDynamo) GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}
func (d *emptyDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.puts = append(d.puts, *in.TableName)
	return &dynamodb.PutItemOutput{}, nil
}
func (d *emptyDynamo) UpdateItem(context.Context, *dynamodb.UpdateItemInput, ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}
func (d *emptyDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deletes = append(d.deletes, *in.TableName)
	return &dynamodb.DeleteItemOutput{}, nil
}
func (d *emptyDynamo) Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}
func (d *emptyDynamo) TransactWriteItems(context.Context, *dynamodb.TransactWriteItemsInput, ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *emptyDynamo) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return newRouterWithProvider(t, jwtinfra.NewProviderFromKeys(key, &key.PublicKey, time.Hour))
}

func newRouterWithProvider(t *testing.T, provider *jwtinfra.Provider) (http.Handler, *emptyDynamo) {
	t.Helper()

	cfg := &config.Config{
		DynamoTables:   config.DynamoTables{Users: "users", Accounts: "accounts", Likes: "likes", Screams: "screams", Notifications: "notifications"},
		S3BucketName:   "imgs",
		AWSRegion:      "us-east-1",
		DefaultAvatar:  "profile.png",
		MaxUploadBytes: 1 << 20,
		CallTimeout:    time.Second,
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
	}
	db := &emptyDynamo{}
	deps := &Deps{
		UserRepo:         dynamo.NewUserRepo(db, cfg.DynamoTables.Users),
		AccountRepo:      dynamo.NewAccountRepo(db, cfg.DynamoTables.Accounts),
		LikeRepo:         dynamo.NewLikeRepo(db, cfg.DynamoTables.Likes),
		ScreamRepo:       dynamo.NewScreamRepo(db, cfg.DynamoTables.Screams),
		NotificationRepo: dynamo.NewNotificationRepo(db, cfg.DynamoTables.Notifications),
		S3Store:          s3infra.NewStore(nil, cfg),
		JWTProvider:      provider,
	}
	return NewRouter(t.Context(), cfg, deps), db
}

func serve(h http.Handler, method, target, token string, body []byte) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health", "", nil).Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/user"},
		{http.MethodPost, "/user"},
		{http.MethodPost, "/user/image"},
		{http.MethodPost, "/notifications"},
	} {
		assert.Equal(t, http.StatusForbidden, serve(h, rt.method, rt.path, "", nil).Code, rt.path)
	}
}

func TestRouter_SignupThenOwnProfile(t *testing.T) {
	h, db := newTestRouter(t)
	body, _ := json.Marshal(map[string]string{
		"email": "alice@example.com", "password": "pw", "confirmPassword": "pw", "handle": "alice",
	})

	rr := serve(h, http.MethodPost, "/signup", "", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp struct{ Token string }
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, []string{"accounts", "users"}, db.puts)

	// The store never keeps anything, so the caller's record is missing.
	rr = serve(h, http.MethodGet, "/user", resp.Token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_SignupWithoutSignerFailsCleanly(t *testing.T) {
	h, db := newRouterWithProvider(t, nil)
	body, _ := json.Marshal(map[string]string{
		"email": "alice@example.com", "password": "pw", "confirmPassword": "pw", "handle": "alice",
	})

	rr := serve(h, http.MethodPost, "/signup", "", body)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"general":"Something went wrong, please try again"}`, rr.Body.String())
	assert.Equal(t, []string{"accounts"}, db.puts)
	assert.Equal(t, []string{"accounts"}, db.deletes)
}

func TestRouter_LoginUnknownAccount(t *testing.T) {
	h, _ := newTestRouter(t)
	rr := serve(h, http.MethodPost, "/login", "", []byte(`{"email":"a@b.co","password":"pw"}`))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_OtherProfileNotFound(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/user/ghost", "", nil).Code)
}

func TestRouter_MetricsExposition(t *testing.T) {
	h, _ := newTestRouter(t)
	serve(h, http.MethodGet, "/health", "", nil)

	rr := serve(h, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `chatty_http_requests_total{method="GET",route="/health",status="200"} 1`))
}
