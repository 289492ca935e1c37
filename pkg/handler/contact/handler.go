/*
 * @Description: 后台联系表单管理
 * @Author: 安知鱼
 * @Date: 2025-07-20 14:36:10
 * @LastEditTime: 2026-10-14 16:33:52
 * @LastEditors: 安知鱼
 */
package contact

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/idgen"
	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/contact"

	"github.com/gin-gonic/gin"
)

// Handler 联系表单后台处理器
type Handler struct {
	contactSvc contact.Service
}

func NewHandler(contactSvc contact.Service) *Handler {
	return &Handler{contactSvc: contactSvc}
}

// IDsRequest 批量操作请求体，ids 为公共ID
type IDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// UpdateRequest 单条更新请求体，字段缺省时不修改
type UpdateRequest struct {
	IsResponded *bool   `json:"is_responded"`
	Notes       *string `json:"notes"`
}

// List 获取联系表单列表
// @Summary      获取联系表单列表
// @Tags         联系表单
// @Security     BearerAuth
// @Produce      json
// @Param        service         query  string  false  "服务类型"
// @Param        is_responded    query  bool    false  "是否已回复"
// @Param        created_after   query  string  false  "起始日期 (YYYY-MM-DD 或 RFC3339)"
// @Param        created_before  query  string  false  "截止日期 (YYYY-MM-DD 或 RFC3339)"
// @Param        search          query  string  false  "搜索姓名、邮箱、留言"
// @Param        page            query  int     false  "页码"
// @Param        page_size       query  int     false  "每页数量"
// @Success      200  {object}  response.Response{data=model.ContactSubmissionListResponse}
// @Router       /admin/contact-submissions [get]
func (h *Handler) List(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.contactSvc.List(c.Request.Context(), opts)
	if err != nil {
		response.FailWithError(c, err, "获取联系表单列表失败")
		return
	}
	response.Success(c, result, "获取联系表单列表成功")
}

func parseListOptions(c *gin.Context) (*model.ListContactSubmissionsOptions, error) {
	opts := &model.ListContactSubmissionsOptions{
		Service: c.Query("service"),
		Search:  c.Query("search"),
	}
	if v := c.Query("is_responded"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("is_responded 参数不正确")
		}
		opts.IsResponded = &b
	}
	if v := c.Query("created_after"); v != "" {
		t, err := parseDateParam(v, false)
		if err != nil {
			return nil, fmt.Errorf("created_after 参数不正确")
		}
		opts.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := parseDateParam(v, true)
		if err != nil {
			return nil, fmt.Errorf("created_before 参数不正确")
		}
		opts.CreatedBefore = &t
	}
	opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	opts.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(model.DefaultSubmissionPageSize)))
	return opts, nil
}

// parseDateParam 支持 RFC3339 与 YYYY-MM-DD 两种格式
// 作为上界时只有日期的值取次日零点，使当天的提交包含在内
func parseDateParam(v string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// Get 获取单条联系表单
// @Summary      获取联系表单详情
// @Tags         联系表单
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "公共ID"
// @Success      200  {object}  response.Response{data=model.ContactSubmissionDTO}
// @Failure      404  {object}  response.Response
// @Router       /admin/contact-submissions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := idgen.DecodePublicID(c.Param("id"), idgen.EntityTypeContactSubmission)
	if err != nil {
		response.FailWithError(c, err, "无效的ID")
		return
	}
	sub, err := h.contactSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err, "获取联系表单失败")
		return
	}
	h.respondDTO(c, sub, "获取联系表单成功")
}

// Update 修改回复状态或备注
// @Summary      更新联系表单
// @Tags         联系表单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "公共ID"
// @Param        body  body  UpdateRequest  true  "更新内容"
// @Success      200  {object}  response.Response{data=model.ContactSubmissionDTO}
// @Router       /admin/contact-submissions/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := idgen.DecodePublicID(c.Param("id"), idgen.EntityTypeContactSubmission)
	if err != nil {
		response.FailWithError(c, err, "无效的ID")
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}
	if req.IsResponded == nil && req.Notes == nil {
		response.Fail(c, http.StatusBadRequest, "没有需要更新的字段")
		return
	}

	ctx := c.Request.Context()
	var sub *model.ContactSubmission
	if req.IsResponded != nil {
		if sub, err = h.contactSvc.SetResponded(ctx, id, *req.IsResponded); err != nil {
			response.FailWithError(c, err, "更新回复状态失败")
			return
		}
	}
	if req.Notes != nil {
		if sub, err = h.contactSvc.UpdateNotes(ctx, id, *req.Notes); err != nil {
			response.FailWithError(c, err, "更新备注失败")
			return
		}
	}
	h.respondDTO(c, sub, "更新联系表单成功")
}

// MarkResponded 批量标记为已回复
// @Summary      批量标记为已回复
// @Tags         联系表单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  IDsRequest  true  "公共ID列表"
// @Success      200  {object}  response.Response{data=object{updated=int}}
// @Router       /admin/contact-submissions/mark-responded [post]
func (h *Handler) MarkResponded(c *gin.Context) {
	h.bulkMark(c, h.contactSvc.MarkResponded)
}

// MarkPending 批量标记为待处理
// @Summary      批量标记为待处理
// @Tags         联系表单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  IDsRequest  true  "公共ID列表"
// @Success      200  {object}  response.Response{data=object{updated=int}}
// @Router       /admin/contact-submissions/mark-pending [post]
func (h *Handler) MarkPending(c *gin.Context) {
	h.bulkMark(c, h.contactSvc.MarkPending)
}

func (h *Handler) bulkMark(c *gin.Context, mark func(ctx context.Context, ids []uint) (int, string, error)) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	n, message, err := mark(c.Request.Context(), ids)
	if err != nil {
		response.FailWithError(c, err, "批量更新失败")
		return
	}
	response.Success(c, gin.H{"updated": n}, message)
}

// Delete 批量删除
// @Summary      批量删除联系表单
// @Tags         联系表单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  IDsRequest  true  "公共ID列表"
// @Success      200  {object}  response.Response{data=object{deleted=int}}
// @Router       /admin/contact-submissions [delete]
func (h *Handler) Delete(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	n, err := h.contactSvc.Delete(c.Request.Context(), ids)
	if err != nil {
		response.FailWithError(c, err, "删除联系表单失败")
		return
	}
	response.Success(c, gin.H{"deleted": n}, fmt.Sprintf("已删除 %d 条联系表单", n))
}

// PendingCount 待回复数量
// @Summary      获取待回复数量
// @Tags         联系表单
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=object{pending=int}}
// @Router       /admin/contact-submissions/pending-count [get]
func (h *Handler) PendingCount(c *gin.Context) {
	n, err := h.contactSvc.PendingCount(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err, "获取待回复数量失败")
		return
	}
	response.Success(c, gin.H{"pending": n}, "获取待回复数量成功")
}

// Choices 表单可选项及展示信息
// @Summary      获取联系表单可选项
// @Tags         联系表单
// @Security     BearerAuth
// @Produce      json
// @Router       /admin/contact-submissions/choices [get]
func (h *Handler) Choices(c *gin.Context) {
	response.Success(c, gin.H{
		"service":  model.ServiceChoices,
		"budget":   model.BudgetChoices,
		"timeline": model.TimelineChoices,
		"emoji":    constant.ServiceEmoji,
		"status": gin.H{
			"responded": constant.StatusResponded,
			"pending":   constant.StatusPending,
		},
	}, "获取可选项成功")
}

func bindIDs(c *gin.Context) ([]uint, bool) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return nil, false
	}
	ids, err := idgen.DecodePublicIDBatch(req.IDs, idgen.EntityTypeContactSubmission)
	if err != nil {
		response.FailWithError(c, err, "无效的ID")
		return nil, false
	}
	return ids, true
}

func (h *Handler) respondDTO(c *gin.Context, sub *model.ContactSubmission, message string) {
	dto, err := h.contactSvc.ToDTO(sub)
	if err != nil {
		response.FailWithError(c, err, "生成公共ID失败")
		return
	}
	response.Success(c, dto, message)
}
