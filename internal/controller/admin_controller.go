package controller

import (
	"cricwordle_backend/internal/service"
	"cricwordle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	wordAdminService *service.WordAdminService
}

func NewAdminController(wordAdminService *service.WordAdminService) *AdminController {
	return &AdminController{wordAdminService: wordAdminService}
}

// adminWordView exposes the secret word; only admin endpoints serialize it.
type adminWordView struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Word     string `json:"word"`
	Points   int    `json:"points"`
}

func (c *AdminController) SeedWords(ctx *gin.Context) {
	var seeds []service.WordSeed
	if err := ctx.ShouldBindJSON(&seeds); err != nil {
		util.BadRequest(ctx, "body must be an array of word entries")
		return
	}

	inserted, err := c.wordAdminService.SeedWords(ctx.Request.Context(), seeds)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if inserted == 0 {
		util.BadRequest(ctx, "no valid word entries provided")
		return
	}

	util.Success(ctx, gin.H{"inserted": inserted})
}

func (c *AdminController) ListCategories(ctx *gin.Context) {
	categories, err := c.wordAdminService.Categories(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"categories": categories})
}

func (c *AdminController) ListCategoryWords(ctx *gin.Context) {
	category := ctx.Param("category")

	words, err := c.wordAdminService.WordsByCategory(category)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	views := make([]adminWordView, 0, len(words))
	for _, w := range words {
		views = append(views, adminWordView{
			ID:       w.ID,
			Date:     w.Date,
			Category: w.Category,
			Level:    w.Level,
			Word:     w.Word,
			Points:   w.Points,
		})
	}

	util.Success(ctx, gin.H{
		"category": category,
		"words":    views,
	})
}

func (c *AdminController) DeleteCategory(ctx *gin.Context) {
	category := ctx.Param("category")

	deleted, err := c.wordAdminService.DeleteCategory(ctx.Request.Context(), category)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deletedCount": deleted})
}
