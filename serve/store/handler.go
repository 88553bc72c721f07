package store

import (
	"net/http"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/gin-gonic/gin"
)

type Handler interface {
	HandleListTalismans(c *gin.Context)
	HandleListCategories(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleListTalismans 查询法物列表
func (h *handler) HandleListTalismans(c *gin.Context) {
	category := c.DefaultQuery("category", CategoryAll)
	if !validCategory(category) {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "无效的法物分类",
		})
		return
	}

	talismans, err := ListTalismans(c, cmn.GormDB, category)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "查询法物失败",
		})
		return
	}

	reply := cmn.NewReply("success", talismans)
	reply.RowCount = int64(len(talismans))
	c.JSON(http.StatusOK, reply)
}

// HandleListCategories 查询法物分类
func (h *handler) HandleListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, cmn.NewReply("success", Categories()))
}
