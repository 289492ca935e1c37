/*
 * @Description: 公开站点：按路径渲染页面上下文，接收联系表单
 * @Author: 安知鱼
 * @Date: 2025-07-20 16:12:08
 * @LastEditTime: 2026-10-14 16:52:37
 * @LastEditors: 安知鱼
 */
package site

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/contact"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/flash"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"

	"github.com/gin-gonic/gin"
)

// Handler 公开页面处理器
type Handler struct {
	pageSvc    page.Service
	contactSvc contact.Service
	flashSvc   flash.Service
}

func NewHandler(pageSvc page.Service, contactSvc contact.Service, flashSvc flash.Service) *Handler {
	return &Handler{
		pageSvc:    pageSvc,
		contactSvc: contactSvc,
		flashSvc:   flashSvc,
	}
}

// Dispatch 处理所有未匹配的路由：GET 渲染页面，POST 提交到联系页
func (h *Handler) Dispatch(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Fail(c, http.StatusNotFound, "接口不存在")
		return
	}
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		h.Render(c)
	case http.MethodPost:
		h.SubmitToPage(c)
	default:
		c.Header("Allow", "GET, HEAD, POST")
		response.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Render 返回页面渲染上下文，附带只显示一次的提示消息
func (h *Handler) Render(c *gin.Context) {
	ctx := c.Request.Context()
	data, err := h.pageSvc.RenderContext(ctx, c.Request.URL.Path)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Page not found")
			return
		}
		response.FailWithError(c, err, "页面渲染失败")
		return
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		response.FailWithError(c, err, "页面渲染失败")
		return
	}
	messages, err := json.Marshal(h.consumeMessages(c))
	if err != nil {
		response.FailWithError(c, err, "页面渲染失败")
		return
	}
	body["messages"] = messages

	out, err := json.Marshal(body)
	if err != nil {
		response.FailWithError(c, err, "页面渲染失败")
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// SubmitToPage 只有联系页接受 POST
func (h *Handler) SubmitToPage(c *gin.Context) {
	doc, err := h.pageSvc.Resolve(c.Request.Context(), c.Request.URL.Path)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Page not found")
			return
		}
		response.FailWithError(c, err, "页面解析失败")
		return
	}
	if doc.Kind != model.KindContact {
		c.Header("Allow", "GET, HEAD")
		response.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.Submit(c)
}

// Submit 保存联系表单，成功或失败都重定向回来源页
// @Summary      提交联系表单
// @Tags         公开站点
// @Accept       x-www-form-urlencoded
// @Param        name      formData  string  false  "姓名"
// @Param        email     formData  string  false  "邮箱"
// @Param        phone     formData  string  false  "电话"
// @Param        company   formData  string  false  "公司"
// @Param        service   formData  string  false  "服务类型"
// @Param        budget    formData  string  false  "预算"
// @Param        timeline  formData  string  false  "时间线"
// @Param        message   formData  string  false  "留言"
// @Success      303  "重定向到来源页"
// @Router       /contact-form/ [post]
func (h *Handler) Submit(c *gin.Context) {
	form := make(map[string]string, len(model.ContactSubmissionFormFields))
	for _, field := range model.ContactSubmissionFormFields {
		if value, ok := c.GetPostForm(field); ok {
			form[field] = value
		}
	}

	if _, err := h.contactSvc.Submit(c.Request.Context(), form); err != nil {
		log.Printf("[Contact] 保存联系表单失败: %v", err)
		h.redirectWithFlash(c, flash.Message{Level: flash.LevelError, Text: contact.FailureMessage})
		return
	}
	h.redirectWithFlash(c, flash.Message{Level: flash.LevelSuccess, Text: contact.SuccessMessage})
}

// RedirectHome 表单入口只接受 POST，其他请求回到首页
func (h *Handler) RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// RejectSubmission 频率超限时按提交失败处理
func (h *Handler) RejectSubmission(c *gin.Context) {
	log.Printf("[Contact] 来自 %s 的联系表单提交过于频繁", c.ClientIP())
	h.redirectWithFlash(c, flash.Message{Level: flash.LevelError, Text: contact.FailureMessage})
}

func (h *Handler) redirectWithFlash(c *gin.Context, msg flash.Message) {
	token, err := h.flashSvc.Add(c.Request.Context(), msg)
	if err != nil {
		log.Printf("[Contact] 保存提示消息失败: %v", err)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(flash.CookieName, token, int(flash.MessageTTL.Seconds()), "/", "", false, true)
	}

	target := c.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}

// consumeMessages 读取并清除 Cookie 对应的提示消息
func (h *Handler) consumeMessages(c *gin.Context) []flash.Message {
	token, err := c.Cookie(flash.CookieName)
	if err != nil || token == "" {
		return []flash.Message{}
	}
	c.SetCookie(flash.CookieName, "", -1, "/", "", false, true)
	messages, err := h.flashSvc.Consume(c.Request.Context(), token)
	if err != nil {
		log.Printf("[Site] 读取提示消息失败: %v", err)
	}
	return messages
}
