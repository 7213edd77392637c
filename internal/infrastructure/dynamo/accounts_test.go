package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountRepo_Create_EmailInUse(t *testing.T) {
	api := &mockAPI{}
	api.On("PutItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{})

	err := NewAccountRepo(api, "accounts").Create(context.Background(), &domain.Account{Email: "a@b.co"})

	assert.True(t, errors.Is(err, domain.ErrEmailInUse))
}

func TestAccountRepo_Create_PasswordHashIsStored(t *testing.T) {
	api := &mockAPI{}
	api.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		h, ok := in.Item["password_hash"].(*types.AttributeValueMemberS)
		return ok && h.Value == "hash"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := NewAccountRepo(api, "accounts").Create(context.Background(), &domain.Account{Email: "a@b.co", PasswordHash: "hash"})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestAccountRepo_Get(t *testing.T) {
	api := &mockAPI{}
	item, err := attributevalue.MarshalMap(domain.Account{Email: "a@b.co", Handle: "alice", UserID: "u1"})
	require.NoError(t, err)
	api.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil).Once()
	api.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

	repo := NewAccountRepo(api, "accounts")
	a, err := repo.Get(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "alice", a.Handle)

	_, err = repo.Get(context.Background(), "x@b.co")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAccountRepo_Delete(t *testing.T) {
	api := &mockAPI{}
	api.On("DeleteItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.DeleteItemInput) bool {
		k, ok := in.Key["email"].(*types.AttributeValueMemberS)
		return ok && k.Value == "a@b.co"
	})).Return(&dynamodb.DeleteItemOutput{}, nil)

	require.NoError(t, NewAccountRepo(api, "accounts").Delete(context.Background(), "a@b.co"))
	api.AssertExpectations(t)
}
