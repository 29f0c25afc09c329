package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/api/http/handler"
	"github.com/dtroode/clubfeed-server/internal/api/http/middleware"
	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

// Per-operation allowed-role sets. These are declared data mirroring the
// product rules; note that promote-to-admin and demote-admin share a set, so
// none of this reduces to a rank comparison.
var (
	postEditors = []model.Role{model.RoleAdmin, model.RoleVIP, model.RoleSuperVIP}
	moderators  = []model.Role{model.RoleVIP, model.RoleSuperVIP}
	superOnly   = []model.Role{model.RoleSuperVIP}
)

// Router wires services into the HTTP route table.
type Router struct {
	postService    handler.PostService
	commentService handler.CommentService
	roleService    handler.RoleService
	resolver       model.IdentityResolver
	media          model.Storage
	logger         *logger.Logger
}

// New creates a new Router instance. media may be nil, in which case the
// media endpoints are not registered.
func New(
	postService handler.PostService,
	commentService handler.CommentService,
	roleService handler.RoleService,
	resolver model.IdentityResolver,
	media model.Storage,
	logger *logger.Logger,
) *Router {
	return &Router{
		postService:    postService,
		commentService: commentService,
		roleService:    roleService,
		resolver:       resolver,
		media:          media,
		logger:         logger,
	}
}

// Register builds the gin engine with all middleware and routes.
func (r *Router) Register() *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.NewLogging(r.logger).Handle())
	e.Use(middleware.CORS())
	e.Use(middleware.NewAuthenticate(r.resolver, r.logger).Handle())

	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	identityHandler := handler.NewIdentity()
	postHandler := handler.NewPost(r.postService, r.logger)
	commentHandler := handler.NewComment(r.commentService, r.logger)
	roleHandler := handler.NewRole(r.roleService, r.logger)

	api := e.Group("/api")

	api.GET("/me", identityHandler.Me)

	api.GET("/posts", postHandler.List)
	api.GET("/posts/search", postHandler.Search)
	api.POST("/posts", middleware.RequireRole(postEditors...), postHandler.Create)
	api.POST("/posts/:id", middleware.RequireRole(postEditors...), postHandler.Update)
	api.DELETE("/posts/:id", middleware.RequireRole(postEditors...), postHandler.Delete)
	api.POST("/posts/:id/like", middleware.RequireIdentity(), postHandler.ToggleLike)

	api.GET("/comments/:postID", commentHandler.ListForPost)
	api.POST("/comments", middleware.RequireIdentity(), commentHandler.Create)

	api.POST("/admin/promote", middleware.RequireRole(moderators...), roleHandler.PromoteToAdmin)
	api.POST("/admin/demote", middleware.RequireRole(moderators...), roleHandler.DemoteAdmin)
	api.POST("/vip/promote", middleware.RequireRole(superOnly...), roleHandler.PromoteToVIP)
	api.POST("/vip/demote", middleware.RequireRole(superOnly...), roleHandler.DemoteVIP)
	api.POST("/supervip/promote", middleware.RequireRole(superOnly...), roleHandler.PromoteToSuperVIP)
	api.POST("/supervip/demote", middleware.RequireRole(superOnly...), roleHandler.DemoteSuperVIP)

	api.POST("/chat/timeout", middleware.RequireRole(moderators...), roleHandler.Timeout)

	if r.media != nil {
		mediaHandler := handler.NewMedia(r.media, r.logger)
		api.POST("/media", middleware.RequireRole(postEditors...), mediaHandler.Upload)
		api.GET("/media/*key", mediaHandler.Download)
	}

	return e
}
