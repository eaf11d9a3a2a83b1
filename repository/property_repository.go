package repository

import (
	"context"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hideObjectID 查询时去掉内部 _id，调用方只看到系统生成的 id
var hideObjectID = bson.M{"_id": 0}

// PropertyRepository 房源存储
type PropertyRepository struct {
	coll *mongo.Collection
}

// NewPropertyRepository 创建房源存储
func NewPropertyRepository(db *MongoDB) *PropertyRepository {
	return &PropertyRepository{coll: db.Collection(PropertiesCollection)}
}

// ListAll 返回全部房源，不保证顺序
func (r *PropertyRepository) ListAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(hideObjectID))
	if err != nil {
		return nil, apperrors.NewDatabase(err, "fetch properties")
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, apperrors.NewDatabase(err, "decode properties")
	}

	utils.LogDbOperation("find", PropertiesCollection, bson.M{}, len(properties))
	return properties, nil
}

// FindByID 按系统 id 查询房源
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(hideObjectID)).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("property")
	}
	if err != nil {
		return nil, apperrors.NewDatabase(err, "fetch property")
	}
	return &property, nil
}

// InsertMany 批量写入房源，只在一次调用中完成
func (r *PropertyRepository) InsertMany(ctx context.Context, properties []models.Property) (int, error) {
	if len(properties) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(properties))
	for i := range properties {
		docs[i] = properties[i]
	}

	result, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, apperrors.NewDatabase(err, "insert properties")
	}

	utils.LogDbOperation("insertMany", PropertiesCollection, nil, len(result.InsertedIDs))
	return len(result.InsertedIDs), nil
}

// ClearAll 删除全部房源，联系记录不受影响
func (r *PropertyRepository) ClearAll(ctx context.Context) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewDatabase(err, "clear properties")
	}

	utils.LogDbOperation("deleteMany", PropertiesCollection, bson.M{}, result.DeletedCount)
	return result.DeletedCount, nil
}
