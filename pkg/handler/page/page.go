package page

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/idgen"
	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
)

// Handler 页面处理器
type Handler struct {
	pageService page.Service
}

// NewHandler 创建页面处理器
func NewHandler(pageService page.Service) *Handler {
	return &Handler{
		pageService: pageService,
	}
}

// PageDTO 后台返回的页面，ID 使用公共ID
type PageDTO struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id"`
	*model.Page
	URL     string        `json:"url,omitempty"`
	Content model.Content `json:"content,omitempty"`
}

// CreateRequest 创建页面请求体
type CreateRequest struct {
	Kind              model.PageKind  `json:"kind" binding:"required"`
	ParentID          string          `json:"parent_id" binding:"required"`
	Title             string          `json:"title" binding:"required"`
	Slug              string          `json:"slug"`
	SEOTitle          string          `json:"seo_title"`
	SearchDescription string          `json:"search_description"`
	Content           json.RawMessage `json:"content"`
	Markdown          bool            `json:"markdown"`
	Publish           bool            `json:"publish"`
}

// UpdateRequest 更新页面请求体，content 中缺省的字段保持原值
type UpdateRequest struct {
	Title             string          `json:"title"`
	Slug              string          `json:"slug"`
	SEOTitle          string          `json:"seo_title"`
	SearchDescription string          `json:"search_description"`
	Content           json.RawMessage `json:"content"`
	Markdown          bool            `json:"markdown"`
}

// PageTypes 获取可创建的页面类型
// @Summary      获取页面类型
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.PageType}
// @Router       /admin/page-types [get]
func (h *Handler) PageTypes(c *gin.Context) {
	response.Success(c, model.PageTypes(), "获取页面类型成功")
}

// Create 创建页面
// @Summary      创建页面
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  CreateRequest  true  "页面信息"
// @Success      201  {object}  response.Response{data=PageDTO}  "创建成功"
// @Failure      400  {object}  response.Response  "请求参数错误"
// @Failure      409  {object}  response.Response  "slug 冲突或数量已达上限"
// @Router       /admin/pages [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}
	parentID, err := idgen.DecodePublicID(req.ParentID, idgen.EntityTypePage)
	if err != nil {
		response.FailWithError(c, err, "无效的父页面ID")
		return
	}
	content, ok := model.NewContent(req.Kind)
	if !ok {
		response.Fail(c, http.StatusBadRequest, fmt.Sprintf("未知的页面类型: %s", req.Kind))
		return
	}
	if len(req.Content) > 0 {
		if err := json.Unmarshal(req.Content, content); err != nil {
			response.Fail(c, http.StatusBadRequest, "页面内容格式不正确: "+err.Error())
			return
		}
	}

	doc, err := h.pageService.Create(c.Request.Context(), parentID, content, model.PageOptions{
		Title:             req.Title,
		Slug:              req.Slug,
		SEOTitle:          req.SEOTitle,
		SearchDescription: req.SearchDescription,
		Markdown:          req.Markdown,
		Publish:           req.Publish,
	})
	if err != nil {
		response.FailWithError(c, err, "创建页面失败")
		return
	}
	h.respond(c, http.StatusCreated, &doc.Page, doc.Content, "创建页面成功")
}

// GetByID 根据ID获取页面
// @Summary      获取页面
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面公共ID"
// @Success      200  {object}  response.Response{data=PageDTO}
// @Failure      404  {object}  response.Response  "页面不存在"
// @Router       /admin/pages/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	doc, err := h.pageService.Get(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err, "获取页面失败")
		return
	}
	h.respond(c, http.StatusOK, &doc.Page, doc.Content, "获取页面成功")
}

// Children 获取子页面列表
// @Summary      获取子页面
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面公共ID"
// @Success      200  {object}  response.Response{data=[]PageDTO}
// @Router       /admin/pages/{id}/children [get]
func (h *Handler) Children(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	children, err := h.pageService.Children(ctx, id)
	if err != nil {
		response.FailWithError(c, err, "获取子页面失败")
		return
	}
	list := make([]PageDTO, 0, len(children))
	for _, child := range children {
		dto, err := h.toDTO(c, child, nil)
		if err != nil {
			response.FailWithError(c, err, "获取子页面失败")
			return
		}
		list = append(list, dto)
	}
	response.Success(c, list, "获取子页面成功")
}

// Update 更新页面
// @Summary      更新页面
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "页面公共ID"
// @Param        body  body  UpdateRequest  true  "页面信息"
// @Success      200  {object}  response.Response{data=PageDTO}
// @Router       /admin/pages/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	ctx := c.Request.Context()
	var content model.Content
	if len(req.Content) > 0 {
		current, err := h.pageService.Get(ctx, id)
		if err != nil {
			response.FailWithError(c, err, "获取页面失败")
			return
		}
		content = current.Content
		if err := json.Unmarshal(req.Content, content); err != nil {
			response.Fail(c, http.StatusBadRequest, "页面内容格式不正确: "+err.Error())
			return
		}
	}

	doc, err := h.pageService.Update(ctx, id, content, model.PageOptions{
		Title:             req.Title,
		Slug:              req.Slug,
		SEOTitle:          req.SEOTitle,
		SearchDescription: req.SearchDescription,
		Markdown:          req.Markdown,
	})
	if err != nil {
		response.FailWithError(c, err, "更新页面失败")
		return
	}
	h.respond(c, http.StatusOK, &doc.Page, doc.Content, "更新页面成功")
}

// Delete 删除页面及其子页面
// @Summary      删除页面
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面公共ID"
// @Success      200  {object}  response.Response{data=object{deleted=int}}
// @Failure      403  {object}  response.Response  "根页面不能删除"
// @Router       /admin/pages/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	n, err := h.pageService.Delete(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err, "删除页面失败")
		return
	}
	response.Success(c, gin.H{"deleted": n}, "删除页面成功")
}

// PublishRequest 发布请求体，go_live_at 为空时立即发布
type PublishRequest struct {
	GoLiveAt *time.Time `json:"go_live_at"`
}

// Publish 发布或定时发布页面
// @Summary      发布页面
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string          true   "页面公共ID"
// @Param        body  body  PublishRequest  false  "定时发布时间"
// @Success      200  {object}  response.Response{data=PageDTO}
// @Router       /admin/pages/{id}/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	var req PublishRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, http.StatusBadRequest, "请求参数错误")
			return
		}
	}

	ctx := c.Request.Context()
	var (
		p   *model.Page
		err error
	)
	if req.GoLiveAt != nil {
		p, err = h.pageService.SchedulePublish(ctx, id, *req.GoLiveAt)
	} else {
		p, err = h.pageService.Publish(ctx, id)
	}
	if err != nil {
		response.FailWithError(c, err, "发布页面失败")
		return
	}
	h.respond(c, http.StatusOK, p, nil, "发布页面成功")
}

// Unpublish 取消发布
// @Summary      取消发布页面
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面公共ID"
// @Success      200  {object}  response.Response{data=PageDTO}
// @Router       /admin/pages/{id}/unpublish [post]
func (h *Handler) Unpublish(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	p, err := h.pageService.Unpublish(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err, "取消发布失败")
		return
	}
	h.respond(c, http.StatusOK, p, nil, "取消发布成功")
}

// SetPrivacy 设置访问限制，子页面一并受限
// @Summary      设置页面访问限制
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "页面公共ID"
// @Param        body  body  object{private=bool}  true  "是否受限"
// @Success      200  {object}  response.Response{data=PageDTO}
// @Router       /admin/pages/{id}/privacy [post]
func (h *Handler) SetPrivacy(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	var req struct {
		Private *bool `json:"private" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}
	p, err := h.pageService.SetPrivate(c.Request.Context(), id, *req.Private)
	if err != nil {
		response.FailWithError(c, err, "设置访问限制失败")
		return
	}
	h.respond(c, http.StatusOK, p, nil, "设置访问限制成功")
}

func pageID(c *gin.Context) (uint, bool) {
	id, err := idgen.DecodePublicID(c.Param("id"), idgen.EntityTypePage)
	if err != nil {
		response.FailWithError(c, err, "无效的页面ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) toDTO(c *gin.Context, p *model.Page, content model.Content) (PageDTO, error) {
	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypePage)
	if err != nil {
		return PageDTO{}, err
	}
	dto := PageDTO{ID: publicID, Page: p, Content: content}
	if p.ParentID != nil {
		parentID, err := idgen.GeneratePublicID(*p.ParentID, idgen.EntityTypePage)
		if err != nil {
			return PageDTO{}, err
		}
		dto.ParentID = &parentID
	}
	// 根节点缺失时省略公开地址
	if url, err := h.pageService.PublicURL(c.Request.Context(), p); err == nil {
		dto.URL = url
	}
	return dto, nil
}

func (h *Handler) respond(c *gin.Context, status int, p *model.Page, content model.Content, message string) {
	dto, err := h.toDTO(c, p, content)
	if err != nil {
		response.FailWithError(c, err, "生成公共ID失败")
		return
	}
	response.SuccessWithStatus(c, status, dto, message)
}
