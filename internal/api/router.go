package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/d60-Lab/feed-service/config"
	"github.com/d60-Lab/feed-service/internal/api/handler"
	"github.com/d60-Lab/feed-service/internal/api/middleware"
	"github.com/d60-Lab/feed-service/internal/service"
)

// nickname：1~64 个字符，不含空白。
func validNickname(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= 64 && !strings.ContainsAny(s, " \t\n")
}

// NewRouter 装配中间件与全部路由。
// 注册/登录/公开读不要求 token，其余写操作与 "我的" 端点走 JWTAuth。
func NewRouter(cfg *config.Config, h *handler.Handler, authSvc service.AuthService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nickname", validNickname)
	}
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLog())
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.JWTAuth(authSvc)
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Signup)
			auth.POST("/login", h.Login)
		}

		feed := api.Group("/feed")
		{
			feed.GET("/read/:id", h.GetFeed)
			feed.GET("/list", h.ListFeeds)
			feed.GET("/list-by-user", h.ListFeedsByUser)
			feed.POST("/create", authRequired, h.CreateFeed)
			feed.PATCH("/update/:id", authRequired, h.UpdateFeed)
			feed.DELETE("/delete/:id", authRequired, h.DeleteFeed)
		}

		comment := api.Group("/comment")
		{
			comment.GET("/feed/:feed_id", h.ListCommentsByFeed)
			comment.POST("/create", authRequired, h.CreateComment)
			comment.PATCH("/update/:id", authRequired, h.UpdateComment)
			comment.DELETE("/delete/:id", authRequired, h.DeleteComment)
		}

		api.PATCH("/like/", authRequired, h.ToggleLike)
		api.PATCH("/follow/:following_id", authRequired, h.ToggleFollow)

		mypage := api.Group("/mypage")
		{
			mypage.GET("/profile", authRequired, h.MyProfile)
			mypage.GET("/feeds", authRequired, h.MyFeeds)
			mypage.GET("/comments", authRequired, h.MyComments)
			mypage.GET("/:user_id/followers", h.Followers)
			mypage.GET("/:user_id/followings", h.Followings)
		}
	}

	return r
}
