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

// screamProjection is the field subset returned on profile pages. Every
// attribute goes through a placeholder since some collide with reserved words.
var screamProjection = map[string]string{
	"#id": attrScreamID,
	"#h":  attrHandle,
	"#b":  "body",
	"#c":  attrCreatedAt,
	"#ui": "user_image",
	"#cc": "comment_count",
	"#lc": "like_count",
}

const screamProjectionExpr = "#id, #h, #b, #c, #ui, #cc, #lc"

// ScreamRepo reads the screams table.
type ScreamRepo struct {
	client    API
	tableName string
}

func NewScreamRepo(client API, tableName string) *ScreamRepo {
	return &ScreamRepo{client: client, tableName: tableName}
}

// ListByHandle returns all screams posted by handle, newest first.
func (r *ScreamRepo) ListByHandle(ctx context.Context, handle string) ([]domain.Scream, error) {
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(indexScreamsByHandle),
		KeyConditionExpression:   aws.String("#h = :h"),
		ProjectionExpression:     aws.String(screamProjectionExpr),
		ExpressionAttributeNames: screamProjection,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":h": &types.AttributeValueMemberS{Value: handle},
		},
		ScanIndexForward: aws.Bool(false),
	})
	screams := []domain.Scream{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []domain.Scream
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal screams: %w", err)
		}
		screams = append(screams, batch...)
	}
	return screams, nil
}
