package repository

import (
	"context"

	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	UserID        string `dynamodbav:"user_id"`
	FullName      string `dynamodbav:"full_name"`
	TaxIdentifier string `dynamodbav:"tax_identifier"`
	DocumentKind  string `dynamodbav:"document_kind"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`
}

// ProfileDynamoRepository reads customer profiles from the table the accounts
// service maintains. This service never writes to it.
//
// Table requirements:
//   - PK: user_id (string)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileStore = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.CustomerProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerProfile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerProfile{}, err
	}
	return entities.CustomerProfile{
		UserID:        it.UserID,
		FullName:      it.FullName,
		TaxIdentifier: it.TaxIdentifier,
		DocumentKind:  document.Kind(it.DocumentKind),
		Email:         it.Email,
		Phone:         it.Phone,
	}, nil
}
