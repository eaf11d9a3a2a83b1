package repository

import (
	"context"
	"time"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CallRepository 联系记录存储
type CallRepository struct {
	coll *mongo.Collection
}

// NewCallRepository 创建联系记录存储
func NewCallRepository(db *MongoDB) *CallRepository {
	return &CallRepository{coll: db.Collection(CallsCollection)}
}

// Insert 写入一条联系记录
func (r *CallRepository) Insert(ctx context.Context, call models.CallRecord) error {
	if _, err := r.coll.InsertOne(ctx, call); err != nil {
		return apperrors.NewDatabase(err, "insert call record")
	}
	utils.LogDbOperation("insertOne", CallsCollection, nil, call.ID)
	return nil
}

// UpdateOutcome 覆盖备注和结果状态并记录更新时间
// 没有匹配的记录时返回 ErrNotFound
func (r *CallRepository) UpdateOutcome(ctx context.Context, callID, remarks string, status models.RequirementStatus, updatedAt time.Time) error {
	filter := bson.M{"id": callID}
	update := bson.M{
		"$set": bson.M{
			"remarks":            remarks,
			"requirement_status": status,
			"updated_at":         updatedAt,
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperrors.NewDatabase(err, "update call record")
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFound("call record")
	}

	utils.LogDbOperation("updateOne", CallsCollection, filter, result.ModifiedCount)
	return nil
}

// ListAll 返回全部联系记录
func (r *CallRepository) ListAll(ctx context.Context) ([]models.CallRecord, error) {
	return r.find(ctx, bson.M{})
}

// ListByProperty 返回某个房源的联系记录，房源不存在时为空列表
func (r *CallRepository) ListByProperty(ctx context.Context, propertyID string) ([]models.CallRecord, error) {
	return r.find(ctx, bson.M{"property_id": propertyID})
}

func (r *CallRepository) find(ctx context.Context, filter bson.M) ([]models.CallRecord, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(hideObjectID))
	if err != nil {
		return nil, apperrors.NewDatabase(err, "fetch calls")
	}
	defer cursor.Close(ctx)

	calls := []models.CallRecord{}
	if err := cursor.All(ctx, &calls); err != nil {
		return nil, apperrors.NewDatabase(err, "decode calls")
	}

	utils.LogDbOperation("find", CallsCollection, filter, len(calls))
	return calls, nil
}
