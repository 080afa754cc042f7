package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAssetsTableName   = "assets"
	defaultCountersTableName = "asset_counters"
	assetsRoomIDIndex        = "room_id-index"

	batchDeleteChunkSize = 25
	batchDeleteRetries   = 3
	batchDeleteBackoff   = 100 * time.Millisecond
)

type historyItem struct {
	Status string `dynamodbav:"status"`
	Date   string `dynamodbav:"date"`
}

type assetItem struct {
	ID        string        `dynamodbav:"id"`
	Code      string        `dynamodbav:"code"`
	Name      string        `dynamodbav:"name"`
	NameKey   string        `dynamodbav:"name_key"`
	RoomID    string        `dynamodbav:"room_id"`
	Status    string        `dynamodbav:"status"`
	DateAdded string        `dynamodbav:"date_added"`
	History   []historyItem `dynamodbav:"history"`
}

// AssetDynamoRepository persists Asset entities plus the per-name sequence
// counters in DynamoDB.
//
// Table requirements:
//   - assets: PK id (string), GSI room_id-index (PK: room_id)
//   - asset_counters: PK name_key (string), attribute seq (number)
//
// Code allocation is transactional: the counter bump and the batch of asset
// puts either all commit or none do, and the bump is conditioned on the
// counter value the caller read, so concurrent batches for the same name key
// cannot reserve overlapping sequence ranges.

type AssetDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IAssetRepository = (*AssetDynamoRepository)(nil)

func NewAssetDynamoRepository(ddb *dynamodb.Client) *AssetDynamoRepository {
	return &AssetDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ASSETS_TABLE", defaultAssetsTableName),
		countersTable: getenvDefault("ASSET_COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *AssetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Asset{}, err
	}
	if len(out.Item) == 0 {
		return entities.Asset{}, nil
	}

	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) ListByRoomID(ctx context.Context, roomID string) ([]entities.Asset, error) {
	assets := make([]entities.Asset, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(assetsRoomIDIndex),
			KeyConditionExpression: aws.String("room_id = :rid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: roomID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it assetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			assets = append(assets, fromAssetItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return assets, nil
}

func (r *AssetDynamoRepository) ListAll(ctx context.Context) ([]entities.Asset, error) {
	assets := make([]entities.Asset, 0)

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
			var it assetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			assets = append(assets, fromAssetItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return assets, nil
}

func (r *AssetDynamoRepository) CurrentSequence(ctx context.Context, name string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name_key": &types.AttributeValueMemberS{Value: entities.NormalizeAssetName(name)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	seqAttr, ok := out.Item["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter item has no numeric seq attribute")
	}
	return strconv.Atoi(seqAttr.Value)
}

func (r *AssetDynamoRepository) CreateBatch(ctx context.Context, name string, lastSeq int, assets []entities.Asset) ([]entities.Asset, error) {
	nameKey := entities.NormalizeAssetName(name)
	newSeq := lastSeq + len(assets)

	counterUpdate := &types.Update{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name_key": &types.AttributeValueMemberS{Value: nameKey},
		},
		UpdateExpression: aws.String("SET seq = :new"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": &types.AttributeValueMemberN{Value: strconv.Itoa(newSeq)},
		},
	}
	if lastSeq == 0 {
		// Counter items are only ever written with seq >= 1, so a fresh name
		// is the item simply not existing yet.
		counterUpdate.ConditionExpression = aws.String("attribute_not_exists(name_key)")
	} else {
		counterUpdate.ConditionExpression = aws.String("seq = :old")
		counterUpdate.ExpressionAttributeValues[":old"] = &types.AttributeValueMemberN{Value: strconv.Itoa(lastSeq)}
	}

	txItems := make([]types.TransactWriteItem, 0, len(assets)+1)
	txItems = append(txItems, types.TransactWriteItem{Update: counterUpdate})
	for _, asset := range assets {
		av, err := attributevalue.MarshalMap(toAssetItem(asset))
		if err != nil {
			return nil, err
		}
		txItems = append(txItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: txItems,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return nil, interfaces.ErrSequenceConflict
		}
		return nil, err
	}
	return assets, nil
}

func (r *AssetDynamoRepository) AppendStatus(ctx context.Context, id string, status entities.AssetStatus, entry entities.HistoryEntry) (entities.Asset, error) {
	entryAttr, err := attributevalue.MarshalMap(historyItem{Status: string(entry.Status), Date: entry.Date})
	if err != nil {
		return entities.Asset{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		// One write for both fields: the store serializes concurrent
		// list_append calls, so racing status updates both land and the
		// live status always matches the final history entry.
		UpdateExpression: aws.String("SET #status = :status, #history = list_append(#history, :entry)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#history": "history",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":entry": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberM{Value: entryAttr},
			}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Asset{}, nil
		}
		return entities.Asset{}, err
	}

	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) UpdateRoom(ctx context.Context, id string, roomID string) (entities.Asset, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #room_id = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#room_id": "room_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: roomID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Asset{}, nil
		}
		return entities.Asset{}, err
	}

	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) DeleteByRoomID(ctx context.Context, roomID string) (int, error) {
	// The sweep reads the room_id GSI, which is eventually consistent: an
	// asset written just before the room delete can be missed and left as a
	// stale reference. Report building drops assets whose room is gone.
	assets, err := r.ListByRoomID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if len(assets) == 0 {
		return 0, nil
	}

	deleted := 0
	for start := 0; start < len(assets); start += batchDeleteChunkSize {
		end := start + batchDeleteChunkSize
		if end > len(assets) {
			end = len(assets)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, asset := range assets[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: asset.ID},
					},
				},
			})
		}

		if err := r.batchDelete(ctx, requests); err != nil {
			return deleted, err
		}
		deleted += end - start
	}
	return deleted, nil
}

// batchDelete issues one BatchWriteItem chunk, re-submitting unprocessed
// items until they drain or the retry budget runs out.
func (r *AssetDynamoRepository) batchDelete(ctx context.Context, requests []types.WriteRequest) error {
	pending := requests
	for attempt := 0; ; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: pending,
			},
		})
		if err != nil {
			return err
		}

		leftover := out.UnprocessedItems[r.tableName]
		if len(leftover) == 0 {
			return nil
		}
		if attempt >= batchDeleteRetries {
			return errors.New("asset sweep left unprocessed deletes after retries")
		}

		pending = leftover
		select {
		case <-time.After(batchDeleteBackoff * time.Duration(attempt+1)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func toAssetItem(a entities.Asset) assetItem {
	history := make([]historyItem, 0, len(a.History))
	for _, entry := range a.History {
		history = append(history, historyItem{Status: string(entry.Status), Date: entry.Date})
	}
	return assetItem{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		NameKey:   entities.NormalizeAssetName(a.Name),
		RoomID:    a.RoomID,
		Status:    string(a.Status),
		DateAdded: a.DateAdded,
		History:   history,
	}
}

func fromAssetItem(it assetItem) entities.Asset {
	history := make([]entities.HistoryEntry, 0, len(it.History))
	for _, entry := range it.History {
		history = append(history, entities.HistoryEntry{Status: entities.AssetStatus(entry.Status), Date: entry.Date})
	}
	return entities.Asset{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		RoomID:    it.RoomID,
		Status:    entities.AssetStatus(it.Status),
		DateAdded: it.DateAdded,
		History:   history,
	}
}
