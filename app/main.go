package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/internal/auth"
	"github.com/conduit-labs/conduit/internal/repository"
	mysqlRepo "github.com/conduit-labs/conduit/internal/repository/mysql"
	myRedisCache "github.com/conduit-labs/conduit/internal/repository/redis"
	"github.com/conduit-labs/conduit/internal/workers"

	"github.com/conduit-labs/conduit/internal/rest"
	"github.com/conduit-labs/conduit/internal/rest/middleware"
	"github.com/conduit-labs/conduit/internal/usecase/article"
	"github.com/conduit-labs/conduit/internal/usecase/comment"
	"github.com/conduit-labs/conduit/internal/usecase/user"
	"github.com/joho/godotenv"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultJWTDays      = 60
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)

	// Article相关的三层架构
	// 1. DB层
	articleDBRepo := mysqlRepo.NewArticleDBRepository(db)
	// 2. Cache层
	articleCache := myRedisCache.NewArticleCache(client)
	// 3. Repository协调层
	articleRepo := repository.NewArticleRepository(articleDBRepo, articleCache)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recountWorker := workers.NewRecountFavoritesWorker(articleDBRepo)
	go recountWorker.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtDaysStr := os.Getenv("JWT_EXPIRE_DAYS")
	jwtDays, err := strconv.Atoi(jwtDaysStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 60 days")
		jwtDays = defaultJWTDays
	}
	tokens := auth.NewTokenService(jwtSecret, time.Duration(jwtDays)*24*time.Hour)

	// usecase层只依赖repository接口
	userSvc := user.NewService(userRepo, tokens)
	articleSvc := article.NewService(articleRepo, userRepo, bloomRepo, recountWorker)
	commentSvc := comment.NewService(commentRepo, articleRepo, userRepo, bloomRepo)
	userHandler := rest.NewUserHandler(userSvc)
	profileHandler := rest.NewProfileHandler(userSvc)
	articleHandler := rest.NewArticleHandler(articleSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	tagHandler := rest.NewTagHandler(articleSvc)

	required := middleware.AuthRequired(tokens)
	optional := middleware.AuthOptional(tokens)

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	api := route.Group("/api")

	api.POST("/users", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/user", required, userHandler.Current)
	api.PUT("/user", required, userHandler.Update)

	api.GET("/profiles/:username", optional, profileHandler.Get)
	api.POST("/profiles/:username/follow", required, profileHandler.Follow)
	api.DELETE("/profiles/:username/follow", required, profileHandler.Unfollow)

	api.GET("/articles", optional, articleHandler.List)
	api.GET("/articles/feed", required, articleHandler.Feed)
	api.GET("/articles/:slug", optional, articleHandler.GetBySlug)
	api.POST("/articles", required, articleHandler.Store)
	api.PUT("/articles/:slug", required, articleHandler.Update)
	api.DELETE("/articles/:slug", required, articleHandler.Delete)
	api.POST("/articles/:slug/favorite", required, articleHandler.Favorite)
	api.DELETE("/articles/:slug/favorite", required, articleHandler.Unfavorite)

	api.GET("/articles/:slug/comments", optional, commentHandler.FetchByArticle)
	api.POST("/articles/:slug/comments", required, commentHandler.Store)
	api.DELETE("/articles/:slug/comments/:id", required, commentHandler.Delete)

	api.GET("/tags", tagHandler.List)

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
