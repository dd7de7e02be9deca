package controller

import (
	"strconv"

	"cricwordle_backend/internal/service"
	"cricwordle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	leaderboardService *service.LeaderboardService
	wordAdminService   *service.WordAdminService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService, wordAdminService *service.WordAdminService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
		wordAdminService:   wordAdminService,
	}
}

// GetLeaderboard handles GET /api/leaderboard?date=YYYY-MM-DD&category=&limit=
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		util.BadRequest(ctx, "date query param is required")
		return
	}

	category := ctx.Query("category")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	rows, err := c.leaderboardService.Leaderboard(ctx.Request.Context(), date, category, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// GetCategories is the public category list players pick from.
func (c *LeaderboardController) GetCategories(ctx *gin.Context) {
	categories, err := c.wordAdminService.Categories(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetProfile returns the caller plus their most recent sessions.
func (c *LeaderboardController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.leaderboardService.ProfileFor(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}
