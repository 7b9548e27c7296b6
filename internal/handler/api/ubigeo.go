package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/usecase/queries"
)

type UbigeoHandler struct {
	ubigeo queries.UbigeoQueries
}

func NewUbigeoHandler(ubigeo queries.UbigeoQueries) *UbigeoHandler {
	return &UbigeoHandler{ubigeo: ubigeo}
}

// @Summary Ubigeo tree
// @Description Departments with their provinces and districts for the address form
// @Tags ubigeo
// @Produce json
// @Success 200 {object} resdto.UbigeoTreeResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /ubigeo [get]
func (h *UbigeoHandler) Tree(c *gin.Context) {
	tree, err := h.ubigeo.Tree(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, resdto.UbigeoTreeResponse{OK: true, Data: tree})
}
