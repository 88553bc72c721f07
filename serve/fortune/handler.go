package fortune

import (
	"net/http"

	"github.com/PolarTechJordan/richtemple/cmn"
	fortunecore "github.com/PolarTechJordan/richtemple/cmn/fortune"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleGetDailyFortune(c *gin.Context)
}

type handler struct {
	svc *Service
}

func NewHandler(svc *Service) Handler {
	if svc == nil {
		svc = Default()
	}
	return &handler{svc: svc}
}

// Reply 每日运势接口返回的数据
type Reply struct {
	fortunecore.Entry
	Source   Source                `json:"source"`
	Sections []fortunecore.Section `json:"sections"`
}

// HandleGetDailyFortune 查询当日运势
func (h *handler) HandleGetDailyFortune(c *gin.Context) {
	entry, source, err := h.svc.GetDailyFortune(c)
	if err != nil {
		z.Error("failed to get daily fortune", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "获取今日运势失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.NewReply("success", Reply{
		Entry:    entry,
		Source:   source,
		Sections: fortunecore.FormatContent(entry.Fortune),
	}))
}
