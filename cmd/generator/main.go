package main

import (
	"flag"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	datasetservice "github.com/wso2/identity-social-dataset-service/internal/dataset/service"
	datasetstore "github.com/wso2/identity-social-dataset-service/internal/dataset/store"
	"github.com/wso2/identity-social-dataset-service/internal/system/config"
	"github.com/wso2/identity-social-dataset-service/internal/system/constants"
	syscontext "github.com/wso2/identity-social-dataset-service/internal/system/context"
	"github.com/wso2/identity-social-dataset-service/internal/system/database/provider"
	"github.com/wso2/identity-social-dataset-service/internal/system/locks"
	"github.com/wso2/identity-social-dataset-service/internal/system/log"
)

// The generation stage: produce a complete synthetic dataset and bulk-write
// it into the four source collections. Exit code 0 signals success to the
// external scheduler; any failure leaves a nonzero exit code and no run is
// declared complete.
func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config/deployment.yaml", "Path to the deployment configuration file")
	seedFlag := flag.Int64("seed", 0, "Random seed; overrides the configured seed when nonzero")
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

	seed := cfg.Generator.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := log.GetLogger().With(log.String("trace_id", syscontext.GenerateTraceID()))

	// Counts are validated before anything touches the store.
	generator, err := datasetservice.NewGenerator(cfg.Generator, seed)
	if err != nil {
		logger.Error("Invalid generation configuration", log.Error(err))
		return 1
	}

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
	acquired, err := runLock.Acquire(constants.GenerationLockKey, constants.DefaultRunLockTTL)
	if err != nil {
		logger.Error("Failed to acquire the generation run lock", log.Error(err))
		return 1
	}
	if !acquired {
		logger.Warn("A generation run is already in progress, skipping this run")
		return 1
	}
	defer func() {
		if err := runLock.Release(constants.GenerationLockKey); err != nil {
			logger.Warn("Failed to release the generation run lock", log.Error(err))
		}
	}()

	logger.Info("Generating dataset",
		log.Int("num_users", cfg.Generator.NumUsers),
		log.Int("num_posts", cfg.Generator.NumPosts),
		log.Int("num_comments", cfg.Generator.NumComments),
		log.Int("num_notifications", cfg.Generator.NumNotifications))

	dataset := generator.Generate()

	injector := datasetservice.NewLabelInjector(seed + 1)
	misleadingUsers := injector.SelectMisleadingUsers(dataset.Users)
	injector.Inject(dataset.Posts, misleadingUsers)

	userStore := datasetstore.NewUserStore(db, constants.UsersCollection)
	postStore := datasetstore.NewPostStore(db, constants.PostsCollection)
	commentStore := datasetstore.NewCommentStore(db, constants.CommentsCollection)
	notificationStore := datasetstore.NewNotificationStore(db, constants.NotificationsCollection)

	if err := userStore.InsertUsers(dataset.Users); err != nil {
		logger.Error("Failed to write the users collection", log.Error(err))
		return 1
	}
	if err := postStore.InsertPosts(dataset.Posts); err != nil {
		logger.Error("Failed to write the posts collection", log.Error(err))
		return 1
	}
	if err := commentStore.InsertComments(dataset.Comments); err != nil {
		logger.Error("Failed to write the comments collection", log.Error(err))
		return 1
	}
	if err := notificationStore.InsertNotifications(dataset.Notifications); err != nil {
		logger.Error("Failed to write the notifications collection", log.Error(err))
		return 1
	}

	logger.Info("Dataset generation completed",
		log.Int("misleading_users", len(misleadingUsers)))
	return 0
}
