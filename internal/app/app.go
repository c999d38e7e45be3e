package app

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-bms/internal/shared/connection"
)

// BuildApp connects the infrastructure and mounts every module on the
// router. The kafka writer is optional: without brokers configured the
// lifecycle publishers degrade to no-ops.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectMongoWithRetry(
		os.Getenv("MONGO_URI"),
		os.Getenv("MONGO_DB"),
		5,
	)
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	var writer *kafka.Writer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		writer = &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		}
		zap.L().Info("kafka writer configured", zap.String("brokers", brokers))
	} else {
		zap.L().Warn("KAFKA_BROKERS not set, lifecycle events disabled")
	}

	return registerModules(router, db, rdb, writer)
}
