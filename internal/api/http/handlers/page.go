package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "page.html"

// pageData 页面模板数据
type pageData struct {
	View dapp.View
}

// PageHandler 服务端渲染的铸造页面
//
// 表单提交后重定向回首页（POST/Redirect/GET），刷新页面不会重复铸造
type PageHandler struct {
	controller Controller
	logger     *zap.Logger
}

// NewPageHandler 创建页面处理器
func NewPageHandler(controller Controller, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{controller: controller, logger: logger}
}

// Templates 解析内置页面模板
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// RegisterRoutes 注册页面路由，同时为引擎设置页面模板
func (h *PageHandler) RegisterRoutes(engine *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	engine.GET("/", h.Index)
	engine.POST("/wallet/connect", h.Connect)
	engine.POST("/mint", h.Mint)
	return nil
}

// Index 渲染当前页面状态
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, h.controller.View())
}

// Connect 连接钱包后回到首页
func (h *PageHandler) Connect(c *gin.Context) {
	h.controller.ConnectWallet(detachedContext(c))
	c.Redirect(http.StatusSeeOther, "/")
}

// Mint 提交铸造表单，等待结果后回到首页
func (h *PageHandler) Mint(c *gin.Context) {
	contractAddr := c.PostForm("contract")
	if contractAddr == "" {
		contractAddr = h.controller.View().SelectedContract
	}

	view, err := h.controller.Submit(detachedContext(c), contractAddr, c.PostForm("recipient"))
	if errors.Is(err, dapp.ErrUnknownContract) {
		h.logger.Warn("表单选择了未知合约", zap.String("contract", contractAddr))
		view.Message, view.MessageKind = "Unknown contract: "+contractAddr, dapp.MessageError
		h.render(c, http.StatusBadRequest, view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) render(c *gin.Context, status int, view dapp.View) {
	c.HTML(status, pageTemplate, pageData{View: view})
}
