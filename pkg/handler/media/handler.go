package media

import (
	"net/http"

	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/media"

	"github.com/gin-gonic/gin"
)

// Handler 媒体上传处理器
type Handler struct {
	mediaSvc media.Service
}

func NewHandler(mediaSvc media.Service) *Handler {
	return &Handler{mediaSvc: mediaSvc}
}

// Upload 上传页面使用的图片
// @Summary      上传媒体文件
// @Tags         媒体
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "图片文件"
// @Success      201  {object}  response.Response{data=media.UploadResult}
// @Failure      400  {object}  response.Response  "文件类型不支持"
// @Router       /admin/media [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少上传文件")
		return
	}
	if fileHeader.Size > media.MaxUploadSize {
		response.Fail(c, http.StatusRequestEntityTooLarge, "文件大小超过限制")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无法读取上传文件")
		return
	}
	defer file.Close()

	result, err := h.mediaSvc.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		response.FailWithError(c, err, "上传文件失败")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, result, "上传文件成功")
}

// Delete 删除媒体文件
// @Summary      删除媒体文件
// @Tags         媒体
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  object{key=string}  true  "对象键"
// @Success      200  {object}  response.Response
// @Router       /admin/media [delete]
func (h *Handler) Delete(c *gin.Context) {
	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}
	if err := h.mediaSvc.Delete(c.Request.Context(), req.Key); err != nil {
		response.FailWithError(c, err, "删除文件失败")
		return
	}
	response.Success(c, nil, "删除文件成功")
}
