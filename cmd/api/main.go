package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sigmagram/internal/config"
	"sigmagram/internal/database"
	"sigmagram/internal/domain"
	"sigmagram/internal/middleware"
	"sigmagram/internal/modules/auth"
	"sigmagram/internal/modules/comments"
	"sigmagram/internal/modules/communities"
	"sigmagram/internal/modules/likes"
	"sigmagram/internal/modules/posts"
	"sigmagram/internal/modules/users"
	jwtsvc "sigmagram/internal/pkg/jwt"
	"sigmagram/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Community{},
		&domain.CommunityFollower{},
		&domain.Post{},
		&domain.Like{},
		&domain.Comment{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	followerRepo := repository.NewFollowerRepository(db)
	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, cfg.AccessTTL, cfg.IsProd())

	usersHandler := users.NewHandler(users.NewService(userRepo))
	communitiesHandler := communities.NewHandler(communities.NewService(communityRepo, followerRepo))
	postsHandler := posts.NewHandler(posts.NewService(postRepo, followerRepo, likeRepo))
	likesHandler := likes.NewHandler(likes.NewService(likeRepo))
	commentsHandler := comments.NewHandler(comments.NewService(commentRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			usersHandler.RegisterRoutes(protected)
			communitiesHandler.RegisterRoutes(protected)
			postsHandler.RegisterRoutes(protected)
			likesHandler.RegisterRoutes(protected)
			commentsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
