package dynamo

import (
	"context"
	"fmt"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LikeRepo reads the likes table.
type LikeRepo struct {
	client    API
	tableName string
}

func NewLikeRepo(client API, tableName string) *LikeRepo {
	return &LikeRepo{client: client, tableName: tableName}
}

// ListByHandle returns every like made by handle, following pagination to the end.
func (r *LikeRepo) ListByHandle(ctx context.Context, handle string) ([]domain.Like, error) {
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(indexLikesByHandle),
		KeyConditionExpression:   aws.String("#h = :h"),
		ExpressionAttributeNames: map[string]string{"#h": attrHandle},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":h": &types.AttributeValueMemberS{Value: handle},
		},
	})
	likes := []domain.Like{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []domain.Like
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal likes: %w", err)
		}
		likes = append(likes, batch...)
	}
	return likes, nil
}
