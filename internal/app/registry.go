package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"go-bms/internal/accountant"
	"go-bms/internal/auth"
	"go-bms/internal/authz"
	"go-bms/internal/client"
	"go-bms/internal/company"
	"go-bms/internal/imagestore"
	"go-bms/internal/middleware"
	"go-bms/internal/product"
	"go-bms/internal/purchase"
	"go-bms/internal/token"
	"go-bms/internal/user"
)

// companyRelations adapts the company repository to the narrow relater
// interfaces the entity services declare. Each entity owns one array
// field on the company doc.
type companyRelations struct {
	repo company.Repository
}

func (a companyRelations) PushEmployee(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PushRelation(ctx, companyID, "employees", id)
}

func (a companyRelations) PullEmployee(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PullRelation(ctx, companyID, "employees", id)
}

func (a companyRelations) PushClient(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PushRelation(ctx, companyID, "clients", id)
}

func (a companyRelations) PullClient(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PullRelation(ctx, companyID, "clients", id)
}

func (a companyRelations) PushProduct(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PushRelation(ctx, companyID, "products", id)
}

func (a companyRelations) PullProduct(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PullRelation(ctx, companyID, "products", id)
}

func (a companyRelations) PushPurchase(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PushRelation(ctx, companyID, "purchases", id)
}

func (a companyRelations) PullPurchase(ctx context.Context, companyID string, id primitive.ObjectID) error {
	return a.repo.PullRelation(ctx, companyID, "purchases", id)
}

func (a companyRelations) SetAccountant(ctx context.Context, companyID string, accountantID *primitive.ObjectID) error {
	return a.repo.SetAccountant(ctx, companyID, accountantID)
}

func registerModules(
	router *gin.Engine,
	db *mongo.Database,
	rdb *redis.Client,
	writer *kafka.Writer,
) error {
	logger := zap.L()

	// --- Repositories ---
	userRepo := user.NewRepository(db)
	companyRepo := company.NewRepository(db)
	clientRepo := client.NewRepository(db)
	productRepo := product.NewRepository(db)
	purchaseRepo := purchase.NewRepository(db)
	accountantRepo := accountant.NewRepository(db)

	relations := companyRelations{repo: companyRepo}
	images := imagestore.Noop{}

	// --- Event publishers ---
	companyPublisher := company.EventPublisher(company.NoopEventPublisher{})
	purchasePublisher := purchase.EventPublisher(purchase.NoopEventPublisher{})
	if writer != nil {
		companyPublisher = company.NewKafkaEventPublisher(writer)
		purchasePublisher = purchase.NewKafkaEventPublisher(writer)
	}

	// --- Authorization ---
	policy, err := authz.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	userSvc := user.NewService(userRepo, images, relations)
	tokenSvc := token.NewService(userSvc, rdb)
	authSvc := auth.NewService(userRepo)
	companySvc := company.NewService(companyRepo, userSvc, images, companyPublisher)
	clientSvc := client.NewService(clientRepo, relations)
	productSvc := product.NewService(productRepo, relations)
	purchaseSvc := purchase.NewService(purchaseRepo, clientRepo, productRepo, relations, purchasePublisher)
	accountantSvc := accountant.NewService(accountantRepo, relations)

	// --- Handlers ---
	authHandler := auth.NewHandler(authSvc, tokenSvc, logger)
	userHandler := user.NewHandler(userSvc, tokenSvc, logger)
	companyHandler := company.NewHandler(companySvc, tokenSvc, logger)
	clientHandler := client.NewHandler(clientSvc, logger)
	productHandler := product.NewHandler(productSvc, logger)
	purchaseHandler := purchase.NewHandlerWithRedis(purchaseSvc, rdb, logger)
	accountantHandler := accountant.NewHandler(accountantSvc, logger)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokenSvc, logger)
		user.RegisterRoutes(api, userHandler, userRepo, tokenSvc, logger)
		company.RegisterRoutes(api, companyHandler, companyRepo, policy, tokenSvc, logger)
		client.RegisterRoutes(api, clientHandler, clientRepo, policy, tokenSvc, logger)
		product.RegisterRoutes(api, productHandler, productRepo, policy, tokenSvc, logger)
		purchase.RegisterRoutes(api, purchaseHandler, purchaseRepo, clientRepo, productRepo, rdb, policy, tokenSvc, logger)
		accountant.RegisterRoutes(api, accountantHandler, accountantRepo, policy, tokenSvc, logger)
	}

	return nil
}
