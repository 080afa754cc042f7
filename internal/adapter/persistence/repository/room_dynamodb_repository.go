package repository

import (
	"context"
	"errors"

	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRoomsTableName = "rooms"

type roomItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Manager string `dynamodbav:"manager"`
}

// RoomDynamoRepository persists Room entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type RoomDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoomRepository = (*RoomDynamoRepository)(nil)

func NewRoomDynamoRepository(ddb *dynamodb.Client) *RoomDynamoRepository {
	return &RoomDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROOMS_TABLE", defaultRoomsTableName),
	}
}

func (r *RoomDynamoRepository) List(ctx context.Context) ([]entities.Room, error) {
	rooms := make([]entities.Room, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it roomItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rooms = append(rooms, fromRoomItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return rooms, nil
}

func (r *RoomDynamoRepository) GetByID(ctx context.Context, id string) (entities.Room, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Room{}, err
	}
	if len(out.Item) == 0 {
		return entities.Room{}, nil
	}

	var it roomItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Room{}, err
	}
	return fromRoomItem(it), nil
}

func (r *RoomDynamoRepository) Create(ctx context.Context, room entities.Room) (entities.Room, error) {
	av, err := attributevalue.MarshalMap(toRoomItem(room))
	if err != nil {
		return entities.Room{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Room{}, err
	}
	return room, nil
}

func (r *RoomDynamoRepository) Update(ctx context.Context, room entities.Room) (entities.Room, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: room.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #manager = :manager"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#name":    "name",
			"#manager": "manager",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":    &types.AttributeValueMemberS{Value: room.Name},
			":manager": &types.AttributeValueMemberS{Value: room.Manager},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Room{}, nil
		}
		return entities.Room{}, err
	}

	var it roomItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Room{}, err
	}
	return fromRoomItem(it), nil
}

func (r *RoomDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toRoomItem(r entities.Room) roomItem {
	return roomItem{ID: r.ID, Name: r.Name, Manager: r.Manager}
}

func fromRoomItem(it roomItem) entities.Room {
	return entities.Room{ID: it.ID, Name: it.Name, Manager: it.Manager}
}
