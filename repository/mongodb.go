package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/estate_end/utils"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// 集合名
	PropertiesCollection       = "properties"
	CallsCollection            = "calls"
	ApiOperationLogsCollection = "apiOperationLogs"
)

// Collections 服务使用的全部集合
var Collections = []string{
	PropertiesCollection,
	CallsCollection,
	ApiOperationLogsCollection,
}

// MongoDB 数据库连接，由启动流程创建并在退出时关闭
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB 连接MongoDB，启动阶段连接失败会按指数退避重试
func NewMongoDB(ctx context.Context, uri, dbName string, maxWait time.Duration) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("连接MongoDB失败: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxWait

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	notify := func(err error, wait time.Duration) {
		utils.Logger.Warn().Err(err).Dur("retryIn", wait).Msg("ping MongoDB失败，稍后重试")
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(policy, ctx), notify); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB失败: %w", err)
	}

	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")

	return NewMongoDBFromClient(client, dbName), nil
}

// NewMongoDBFromClient 使用已有客户端构造，测试中传入 mock 客户端
func NewMongoDBFromClient(client *mongo.Client, dbName string) *MongoDB {
	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}
}

// Close 关闭MongoDB连接
func (m *MongoDB) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
		return err
	}
	utils.Logger.Info().Msg("已断开MongoDB连接")
	return nil
}

// Collection 返回指定名称的集合
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// Ping 检查连接状态
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// InitializeCollections 创建缺失的集合和索引
func (m *MongoDB) InitializeCollections(ctx context.Context) error {
	existing, err := m.Database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("检查集合失败: %w", err)
	}
	exists := make(map[string]bool, len(existing))
	for _, name := range existing {
		exists[name] = true
	}

	for _, collName := range Collections {
		if exists[collName] {
			utils.Logger.Debug().Str("collection", collName).Msg("集合已存在")
			continue
		}
		if err := m.Database.CreateCollection(ctx, collName); err != nil {
			return fmt.Errorf("创建集合 %s 失败: %w", collName, err)
		}
		utils.Logger.Info().Str("collection", collName).Msg("创建集合成功")
	}

	return m.ensureIndexes(ctx)
}

// ensureIndexes id 唯一，联系记录按 property_id 查询
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		PropertiesCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CallsCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "property_id", Value: 1}}},
		},
	}

	for collName, models := range indexes {
		if _, err := m.Collection(collName).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("创建索引失败 %s: %w", collName, err)
		}
	}
	return nil
}

// GetDatabaseStatus 获取各集合的文档数量
func (m *MongoDB) GetDatabaseStatus(ctx context.Context) map[string]interface{} {
	result := make(map[string]interface{}, len(Collections))

	for _, collName := range Collections {
		count, err := m.Collection(collName).EstimatedDocumentCount(ctx)
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("获取集合计数失败")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{
			"count": count,
		}
	}

	return result
}
