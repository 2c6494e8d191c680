package main

import (
	"flag"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	datasetstore "github.com/wso2/identity-social-dataset-service/internal/dataset/store"
	mergeservice "github.com/wso2/identity-social-dataset-service/internal/merge/service"
	mergestore "github.com/wso2/identity-social-dataset-service/internal/merge/store"
	"github.com/wso2/identity-social-dataset-service/internal/system/config"
	"github.com/wso2/identity-social-dataset-service/internal/system/constants"
	"github.com/wso2/identity-social-dataset-service/internal/system/database/provider"
	"github.com/wso2/identity-social-dataset-service/internal/system/locks"
	"github.com/wso2/identity-social-dataset-service/internal/system/log"
)

// The merge stage: consolidate every user with their posts, comments and
// notifications into the merged collection. Per-user failures are isolated
// so the batch finishes, but any failure leaves a nonzero exit code.
func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config/deployment.yaml", "Path to the deployment configuration file")
	flag.Parse()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		stdlog.Printf("Failed to load configuration: %v", err)
		return 1
	}
	config.InitializeRuntime(cfg)

	if err := log.Init(cfg.Log.LogLevel); err != nil {
		stdlog.Printf("Failed to initialize logger: %v", err)
		return 1
	}
	logger := log.GetLogger()

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		logger.Error("Failed to connect to the document store", log.Error(err))
		return 1
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Warn("Failed to close the document store client", log.Error(err))
		}
	}()
	db := dbClient.Database()

	runLock := locks.NewMongoLock(db)
	acquired, err := runLock.Acquire(constants.MergeLockKey, constants.DefaultRunLockTTL)
	if err != nil {
		logger.Error("Failed to acquire the merge run lock", log.Error(err))
		return 1
	}
	if !acquired {
		logger.Warn("A merge run is already in progress, skipping this run")
		return 1
	}
	defer func() {
		if err := runLock.Release(constants.MergeLockKey); err != nil {
			logger.Warn("Failed to release the merge run lock", log.Error(err))
		}
	}()

	mergedStore := mergestore.NewMergedStore(db, constants.MergedCollection)
	if err := mergedStore.EnsureIndexes(); err != nil {
		logger.Error("Failed to ensure the merged collection index", log.Error(err))
		return 1
	}

	merger := mergeservice.NewMergeService(
		datasetstore.NewUserStore(db, constants.UsersCollection),
		datasetstore.NewPostStore(db, constants.PostsCollection),
		datasetstore.NewCommentStore(db, constants.CommentsCollection),
		datasetstore.NewNotificationStore(db, constants.NotificationsCollection),
		mergedStore,
	)

	report, err := merger.MergeAll()
	if err != nil {
		logger.Error("Merge pass aborted", log.Error(err))
		return 1
	}
	if report.Failed > 0 {
		return 1
	}
	return 0
}
