package controller

import (
	"errors"

	"cricwordle_backend/internal/service"
	"cricwordle_backend/internal/util"
	"cricwordle_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type PuzzleController struct {
	puzzleService *service.PuzzleService
}

func NewPuzzleController(puzzleService *service.PuzzleService) *PuzzleController {
	return &PuzzleController{puzzleService: puzzleService}
}

type InitPuzzleRequest struct {
	Category string `json:"category" binding:"required"`
	Level    string `json:"level" binding:"required"`
	Date     string `json:"date"`
}

type GuessRequest struct {
	PuzzleID string `json:"puzzleId" binding:"required"`
	Guess    string `json:"guess" binding:"required"`
}

type FinishRequest struct {
	PuzzleID string `json:"puzzleId" binding:"required"`
	Score    *int   `json:"score"`
}

// requesterID returns the authenticated user id, or nil for guests.
func requesterID(ctx *gin.Context) *uint {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return nil
	}
	id := claims.UserID
	return &id
}

// respondPuzzleError maps the engine's typed errors onto HTTP statuses.
func respondPuzzleError(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, util.ErrNoWordForSlot), errors.Is(err, util.ErrSessionNotFound):
		monitoring.PuzzleOps.WithLabelValues(op, "not_found").Inc()
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrNotSessionOwner):
		monitoring.PuzzleOps.WithLabelValues(op, "forbidden").Inc()
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAlreadyFinished), errors.Is(err, util.ErrAttemptsExhausted):
		monitoring.PuzzleOps.WithLabelValues(op, "conflict").Inc()
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrGuessLengthMismatch):
		monitoring.PuzzleOps.WithLabelValues(op, "bad_request").Inc()
		util.BadRequest(ctx, err.Error())
	default:
		monitoring.PuzzleOps.WithLabelValues(op, "error").Inc()
		util.LogInternalError(ctx, err)
	}
}

func (c *PuzzleController) Init(ctx *gin.Context) {
	var req InitPuzzleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "category and level are required")
		return
	}

	result, err := c.puzzleService.Init(requesterID(ctx), req.Category, req.Level, req.Date)
	if err != nil {
		respondPuzzleError(ctx, "init", err)
		return
	}

	monitoring.PuzzleOps.WithLabelValues("init", "ok").Inc()
	util.Success(ctx, result)
}

func (c *PuzzleController) Guess(ctx *gin.Context) {
	var req GuessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "puzzleId and guess are required")
		return
	}

	result, err := c.puzzleService.Guess(req.PuzzleID, requesterID(ctx), req.Guess)
	if err != nil {
		respondPuzzleError(ctx, "guess", err)
		return
	}

	if result.Solved {
		monitoring.PuzzleOps.WithLabelValues("guess", "solved").Inc()
	} else {
		monitoring.PuzzleOps.WithLabelValues("guess", "ok").Inc()
	}
	util.Success(ctx, result)
}

func (c *PuzzleController) Finish(ctx *gin.Context) {
	var req FinishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "puzzleId is required")
		return
	}

	result, err := c.puzzleService.Finish(req.PuzzleID, requesterID(ctx), req.Score)
	if err != nil {
		respondPuzzleError(ctx, "finish", err)
		return
	}

	monitoring.PuzzleOps.WithLabelValues("finish", "ok").Inc()
	util.Success(ctx, gin.H{
		"success":  true,
		"score":    result.Score,
		"maxScore": result.MaxScore,
	})
}
