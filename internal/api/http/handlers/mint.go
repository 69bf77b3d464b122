package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/internal/api/http/middleware"
	"github.com/c0np4nn4/dapp-practice/internal/api/http/types"
)

// MintRequest JSON 铸造请求；contract 为空时使用当前选择
type MintRequest struct {
	Contract  string `json:"contract"`
	Recipient string `json:"recipient"`
}

// MintHandlers JSON API 处理器
type MintHandlers struct {
	controller Controller
	logger     *zap.Logger
}

// NewMintHandlers 创建 JSON API 处理器
func NewMintHandlers(controller Controller, logger *zap.Logger) *MintHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MintHandlers{controller: controller, logger: logger}
}

// RegisterRoutes 注册路由
//
//	GET  /state           当前页面状态
//	POST /wallet/connect  连接钱包
//	POST /mint            铸造
func (h *MintHandlers) RegisterRoutes(r gin.IRouter) {
	r.GET("/state", h.GetState)
	r.POST("/wallet/connect", h.ConnectWallet)
	r.POST("/mint", h.Mint)
}

// GetState 返回当前页面状态
func (h *MintHandlers) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.View())
}

// ConnectWallet 连接钱包并返回页面状态
func (h *MintHandlers) ConnectWallet(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.ConnectWallet(detachedContext(c)))
}

// Mint 铸造并返回页面状态
//
// 铸造失败同样返回 200，结果体现在 message 与 attempt 字段；
// 只有请求本身无效时返回 400
func (h *MintHandlers) Mint(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, http.StatusBadRequest, types.ErrInvalidArgument, "invalid request body: "+err.Error())
		return
	}
	if req.Contract == "" {
		req.Contract = h.controller.View().SelectedContract
	}

	view, err := h.controller.Submit(detachedContext(c), req.Contract, req.Recipient)
	if errors.Is(err, dapp.ErrUnknownContract) {
		h.writeError(c, http.StatusBadRequest, types.ErrUnknownContract, err.Error()+": "+req.Contract)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *MintHandlers) writeError(c *gin.Context, status int, code, message string) {
	h.logger.Warn("API请求无效",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("code", code),
		zap.String("message", message))
	c.AbortWithStatusJSON(status, types.NewErrorResponse(code, message).WithRequestID(middleware.GetRequestID(c)))
}
