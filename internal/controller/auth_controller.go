package controller

import (
	"errors"

	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/service"
	"cricwordle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if !service.ValidPassword(req.Password) {
		util.BadRequest(ctx, "password must be at least 6 characters long and contain at least one number")
		return
	}

	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	}

	err := c.authService.Register(user, req.Password, req.IsAdmin)
	switch {
	case err == nil:
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrUsernameTaken),
		errors.Is(err, util.ErrAdminExists):
		util.BadRequest(ctx, err.Error())
		return
	default:
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.authService.Login(req.EmailOrUsername, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredential) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}
