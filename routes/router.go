package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/config"
	"github.com/scribeapp/scribe/controllers"
	"github.com/scribeapp/scribe/middleware"
	"github.com/scribeapp/scribe/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// one store session per request, committed or rolled back on exit
	r.Use(middleware.Transaction(db))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	categoryController := controllers.NewCategoryController(db)
	tagController := controllers.NewTagController(db)
	commentController := controllers.NewCommentController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", middleware.RateLimit(), authController.Register)
	authGroup.POST("/login", middleware.RateLimit(), authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(db), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(db), authController.Me)

	usersGroup := api.Group("/users")
	usersGroup.Use(middleware.AuthRequired(db), middleware.SuperuserRequired())
	usersGroup.GET("", userController.ListUsers)
	usersGroup.POST("", userController.CreateUser)
	usersGroup.GET("/:id", userController.GetUser)
	usersGroup.PATCH("/:id", userController.UpdateUser)
	usersGroup.DELETE("/:id", userController.DeleteUser)

	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:id", middleware.PostViews(), postController.GetPost)
	api.GET("/posts/:id/comments", commentController.ListPostComments)

	writers := api.Group("")
	writers.Use(middleware.AuthRequired(db), middleware.ActiveRequired())
	writers.POST("/posts", postController.CreatePost)
	writers.PATCH("/posts/:id", postController.UpdatePost)
	writers.DELETE("/posts/:id", postController.DeletePost)
	writers.PUT("/posts/:id/tags", postController.SetPostTags)
	writers.POST("/posts/:id/comments", commentController.CreateComment)
	writers.PATCH("/comments/:id", commentController.UpdateComment)
	writers.DELETE("/comments/:id", commentController.DeleteComment)

	api.GET("/categories", categoryController.ListCategories)
	api.GET("/categories/:id", categoryController.GetCategory)
	writers.POST("/categories", categoryController.CreateCategory)
	writers.PATCH("/categories/:id", categoryController.UpdateCategory)
	writers.DELETE("/categories/:id", categoryController.DeleteCategory)

	api.GET("/tags", tagController.ListTags)
	api.GET("/tags/:id", tagController.GetTag)
	writers.POST("/tags", tagController.CreateTag)
	writers.POST("/tags/bulk", tagController.BulkCreateTags)
	writers.PATCH("/tags/:id", tagController.UpdateTag)
	writers.DELETE("/tags/:id", tagController.DeleteTag)

	return r
}
