package api

import (
	"net/http"

	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(api *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	posts := api.Group("/posts")
	{
		posts.GET("", handler.List)
		posts.GET("/:id", handler.Get)
		posts.POST("", handler.Create)
		posts.PUT("/:id", handler.Update)
		posts.DELETE("/:id", handler.Delete)
	}
}

type DeletePostResponse struct {
	ID string `json:"id"`
}

// List godoc
// @Summary      List posts
// @Description  With orgId, every post of that organization. Without it, the public feed of active posts.
// @Tags         posts
// @Produce      json
// @Param        orgId  query     string  false  "Organization id"
// @Success      200    {object}  response.Response{data=[]domain.Post}
// @Failure      400    {object}  response.Response
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUC.ListPosts(c.Request.Context(), c.Query("orgId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Posts retrieved", posts)
}

// Get godoc
// @Summary      Fetch a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Response{data=domain.Post}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postUC.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post retrieved", post)
}

// Create godoc
// @Summary      Create a post
// @Description  Status defaults to draft and location to Remote.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body      domain.PostInput  true  "Post"
// @Success      201   {object}  response.Response{data=domain.Post}
// @Failure      400   {object}  response.Response
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req domain.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	post, err := h.postUC.CreatePost(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", post)
}

// Update godoc
// @Summary      Replace a post
// @Description  Fields left out reset to their defaults. Owner and status never change.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Post id"
// @Param        post  body      domain.PostInput  true  "Post"
// @Success      200   {object}  response.Response{data=domain.Post}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	var req domain.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	post, err := h.postUC.UpdatePost(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated", post)
}

// Delete godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Response{data=DeletePostResponse}
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.postUC.DeletePost(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted", DeletePostResponse{ID: id})
}
