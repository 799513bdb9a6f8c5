package repository

import (
	"context"
	"errors"
	"time"

	"autocare/internal/domain/entities"
	"autocare/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

// The whole aggregate is one item: the record arrays live inside the user
// document, so a Save is a single PutItem and array order is preserved
// for free. Dates are stored in the bot's wire format (DD.MM.YYYY).
type oilChangeItem struct {
	Date    string `dynamodbav:"date"`
	Mileage int    `dynamodbav:"mileage"`
	OilName string `dynamodbav:"oil_name"`
}

type oilAddItem struct {
	Date    string  `dynamodbav:"date"`
	Mileage int     `dynamodbav:"mileage"`
	Amount  float64 `dynamodbav:"amount"`
}

type partItem struct {
	Name string  `dynamodbav:"name"`
	Cost float64 `dynamodbav:"cost"`
}

type repairItem struct {
	ID         string     `dynamodbav:"id"`
	Date       string     `dynamodbav:"date"`
	Category   string     `dynamodbav:"category"`
	Mileage    int        `dynamodbav:"mileage"`
	Parts      []partItem `dynamodbav:"parts"`
	RepairCost float64    `dynamodbav:"repair_cost"`
	Comment    string     `dynamodbav:"comment,omitempty"`
	PhotoRef   string     `dynamodbav:"photo_ref,omitempty"`
}

type lastMileageItem struct {
	Date    string `dynamodbav:"date"`
	Mileage int    `dynamodbav:"mileage"`
}

type userItem struct {
	UserID             string           `dynamodbav:"user_id"`
	OilChanges         []oilChangeItem  `dynamodbav:"oil_changes"`
	OilAdds            []oilAddItem     `dynamodbav:"oil_adds"`
	Repairs            []repairItem     `dynamodbav:"repairs"`
	LastMileage        *lastMileageItem `dynamodbav:"last_mileage,omitempty"`
	LastReminderSentAt string           `dynamodbav:"last_reminder_sent_at,omitempty"`
}

// UserDynamoRepository persists UserProfile aggregates in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) FindByUser(ctx context.Context, userID string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Create(ctx context.Context, userID string) (entities.UserProfile, error) {
	p := entities.UserProfile{UserID: userID}
	av, err := attributevalue.MarshalMap(toUserItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "user_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Lost a create race; the existing document wins.
			return r.FindByUser(ctx, userID)
		}
		return entities.UserProfile{}, err
	}
	return p, nil
}

func (r *UserDynamoRepository) Save(ctx context.Context, profile entities.UserProfile) error {
	av, err := attributevalue.MarshalMap(toUserItem(profile))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.UserProfile, error) {
	var profiles []entities.UserProfile
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []userItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			profiles = append(profiles, fromUserItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return profiles, nil
}

func toUserItem(p entities.UserProfile) userItem {
	it := userItem{UserID: p.UserID}
	for _, oc := range p.OilChanges {
		it.OilChanges = append(it.OilChanges, oilChangeItem{
			Date:    oc.Date.Format(entities.DateLayout),
			Mileage: oc.Mileage,
			OilName: oc.OilName,
		})
	}
	for _, oa := range p.OilAdds {
		it.OilAdds = append(it.OilAdds, oilAddItem{
			Date:    oa.Date.Format(entities.DateLayout),
			Mileage: oa.Mileage,
			Amount:  oa.AmountLiters,
		})
	}
	for _, r := range p.Repairs {
		ri := repairItem{
			ID:         r.ID,
			Date:       r.Date.Format(entities.DateTimeLayout),
			Category:   string(r.Category),
			Mileage:    r.Mileage,
			RepairCost: r.RepairCost,
			Comment:    r.Comment,
			PhotoRef:   r.PhotoRef,
		}
		for _, part := range r.Parts {
			ri.Parts = append(ri.Parts, partItem(part))
		}
		it.Repairs = append(it.Repairs, ri)
	}
	if p.LastMileage != nil {
		it.LastMileage = &lastMileageItem{
			Date:    p.LastMileage.Date.Format(entities.DateLayout),
			Mileage: p.LastMileage.Mileage,
		}
	}
	if p.LastReminderSentAt != nil {
		it.LastReminderSentAt = p.LastReminderSentAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromUserItem(it userItem) entities.UserProfile {
	p := entities.UserProfile{UserID: it.UserID}
	for _, oc := range it.OilChanges {
		date, _ := time.Parse(entities.DateLayout, oc.Date)
		p.OilChanges = append(p.OilChanges, entities.OilChange{
			Date:    date,
			Mileage: oc.Mileage,
			OilName: oc.OilName,
		})
	}
	for _, oa := range it.OilAdds {
		date, _ := time.Parse(entities.DateLayout, oa.Date)
		p.OilAdds = append(p.OilAdds, entities.OilAdd{
			Date:         date,
			Mileage:      oa.Mileage,
			AmountLiters: oa.Amount,
		})
	}
	for _, ri := range it.Repairs {
		date, _ := time.Parse(entities.DateTimeLayout, ri.Date)
		r := entities.Repair{
			ID:         ri.ID,
			Date:       date,
			Category:   entities.RepairCategory(ri.Category),
			Mileage:    ri.Mileage,
			RepairCost: ri.RepairCost,
			Comment:    ri.Comment,
			PhotoRef:   ri.PhotoRef,
		}
		for _, part := range ri.Parts {
			r.Parts = append(r.Parts, entities.Part(part))
		}
		p.Repairs = append(p.Repairs, r)
	}
	if it.LastMileage != nil {
		date, _ := time.Parse(entities.DateLayout, it.LastMileage.Date)
		p.LastMileage = &entities.LastMileage{Date: date, Mileage: it.LastMileage.Mileage}
	}
	if it.LastReminderSentAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.LastReminderSentAt); err == nil {
			p.LastReminderSentAt = &t
		}
	}
	return p
}
