package api

import (
	"net/http"

	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(api *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	api.POST("/cv", handler.Save)
	api.GET("/cv", handler.Get)
}

// Save godoc
// @Summary      Save a CV
// @Description  Overwrite the profile of an existing student. Optional fields left out are cleared.
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        cv  body      domain.CV  true  "CV"
// @Success      200  {object}  response.Response{data=domain.CV}
// @Failure      400  {object}  response.Response
// @Router       /cv [post]
func (h *CVHandler) Save(c *gin.Context) {
	var req domain.CV
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	cv, err := h.cvUC.SaveCV(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV saved", cv)
}

// Get godoc
// @Summary      Fetch a CV
// @Tags         cv
// @Produce      json
// @Param        email  query     string  true  "Student email"
// @Success      200    {object}  response.Response{data=domain.CV}
// @Failure      400    {object}  response.Response
// @Router       /cv [get]
func (h *CVHandler) Get(c *gin.Context) {
	cv, err := h.cvUC.GetCV(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV retrieved", cv)
}
