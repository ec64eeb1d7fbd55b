package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/internal/service"
	"github.com/d60-Lab/feed-service/internal/storage"
	"github.com/d60-Lab/feed-service/pkg/pagination"
	"github.com/d60-Lab/feed-service/pkg/response"
)

// formFiles 将 multipart 文件段转换为待上传文件并返回关闭函数。
func formFiles(headers []*multipart.FileHeader) ([]storage.File, func(), error) {
	files := make([]storage.File, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range closers {
			_ = f.Close()
		}
	}
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, src)
		files = append(files, storage.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        src,
			Size:        fh.Size,
		})
	}
	return files, closeAll, nil
}

// CreateFeed 发布动态（multipart：title、content、images 文件段）
// @Summary 发布动态
// @Tags feed
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "标题"
// @Param content formData string true "内容"
// @Param images formData file false "图片（可多个）"
// @Success 200 {object} response.Response{data=service.FeedDetail}
// @Failure 400 {object} response.Response
// @Router /api/feed/create [post]
func (h *Handler) CreateFeed(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		response.BadRequest(c, "title and content are required")
		return
	}

	var headers []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		headers = form.File["images"]
	}
	files, closeAll, err := formFiles(headers)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer closeAll()

	feed, err := h.feedSvc.Create(c.Request.Context(), currentEmail(c), title, content, files)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, feed)
}

// GetFeed 读取单条动态
// @Summary 读取动态
// @Tags feed
// @Produce json
// @Param id path int true "feed id"
// @Success 200 {object} response.Response{data=service.FeedDetail}
// @Failure 404 {object} response.Response
// @Router /api/feed/read/{id} [get]
func (h *Handler) GetFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	feed, err := h.feedSvc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, feed)
}

// ListFeeds 公开动态列表（新→旧）
// @Summary 动态列表
// @Tags feed
// @Produce json
// @Success 200 {object} response.Response{data=[]service.FeedDetail}
// @Router /api/feed/list [get]
func (h *Handler) ListFeeds(c *gin.Context) {
	feeds, err := h.feedSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, feeds)
}

// ListFeedsByUser 按用户过滤的分页动态列表
// @Summary 按用户查动态
// @Tags feed
// @Produce json
// @Param user_id query int false "用户ID（三选一）"
// @Param nickname query string false "昵称（三选一）"
// @Param email query string false "邮箱（三选一）"
// @Param skip query int false "偏移" default(0)
// @Param limit query int false "每页数量" default(10)
// @Param sort_by query string false "id_asc|id_desc|create_dt_asc|create_dt_desc"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/feed/list-by-user [get]
func (h *Handler) ListFeedsByUser(c *gin.Context) {
	skip, limit, ok := parsePage(c)
	if !ok {
		return
	}

	var sel service.UserSelector
	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid user_id")
			return
		}
		sel.UserID = &id
	}
	if v := c.Query("nickname"); v != "" {
		sel.Nickname = &v
	}
	if v := c.Query("email"); v != "" {
		sel.Email = &v
	}

	total, feeds, err := h.feedSvc.ListByUser(c.Request.Context(), sel, skip, limit, c.Query("sort_by"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"total_count": total,
		"feeds":       feeds,
		"pagination":  pagination.Paginate(skip, limit, total),
	})
}

// UpdateFeed 更新动态（multipart：title、content、new_images 文件段、target_image_urls）
// @Summary 更新动态
// @Tags feed
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "feed id"
// @Param title formData string true "标题"
// @Param content formData string true "内容"
// @Param new_images formData file false "新增图片（可多个）"
// @Param target_image_urls formData string false "要移除的图片 URL（可重复）"
// @Success 200 {object} response.Response{data=service.FeedDetail}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/feed/update/{id} [patch]
func (h *Handler) UpdateFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		response.BadRequest(c, "title and content are required")
		return
	}

	var headers []*multipart.FileHeader
	var removed []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		headers = form.File["new_images"]
		removed = form.Value["target_image_urls"]
	}
	files, closeAll, err := formFiles(headers)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer closeAll()

	feed, err := h.feedSvc.Update(c.Request.Context(), id, currentEmail(c), title, content, files, removed)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, feed)
}

// DeleteFeed 删除动态（附带图片与子级评论/点赞）
// @Summary 删除动态
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param id path int true "feed id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/feed/delete/{id} [delete]
func (h *Handler) DeleteFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.feedSvc.Delete(c.Request.Context(), id, currentEmail(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "feed deleted"})
}
