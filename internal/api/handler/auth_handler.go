package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/pkg/response"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname" binding:"required,nickname"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup 注册
// @Summary 注册新用户
// @Tags auth
// @Accept json
// @Produce json
// @Param request body signupRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.authSvc.Signup(c.Request.Context(), req.Email, req.Password, req.Nickname)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"email": user.Email, "nickname": user.Nickname, "create_dt": user.CreateDT})
}

// Login 登录，签发 bearer token
// @Summary 登录
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"email": user.Email, "nickname": user.Nickname, "access_token": token})
}
