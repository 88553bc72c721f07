package divination

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PolarTechJordan/richtemple/cmn"
	divcore "github.com/PolarTechJordan/richtemple/cmn/divination"
	"github.com/PolarTechJordan/richtemple/serve/ritual"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler interface {
	HandleDivine(c *gin.Context)
	HandleQueryDivination(c *gin.Context)
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

// Reply 占卜接口返回的数据
type Reply struct {
	Id        uuid.UUID      `json:"id"`
	Wish      string         `json:"wish"`
	Numbers   [3]int         `json:"numbers"`
	Source    Source         `json:"source"`
	Result    divcore.Result `json:"result"`
	CreatedAt int64          `json:"createdAt"`
}

func newReply(record cmn.TDivination) Reply {
	var numbers [3]int
	if err := json.Unmarshal(record.Numbers, &numbers); err != nil {
		z.Warn("failed to unmarshal divination numbers", zap.Error(err), zap.String("id", record.Id.String()))
	}

	return Reply{
		Id:        record.Id,
		Wish:      record.Wish,
		Numbers:   numbers,
		Source:    Source(record.Source),
		Result:    ToResult(record),
		CreatedAt: record.CreatedAt,
	}
}

// HandleDivine 使用当前祈福进度中的愿望与数字占卜，同一流程只占卜一次
func (h *handler) HandleDivine(c *gin.Context) {
	state, _ := ritual.Current(c)
	if state.Wish == "" || !state.HasNumbers() {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请先许愿并选择三个数字",
		})
		return
	}

	if id, err := uuid.Parse(state.DivinationId); err == nil {
		record, err := QueryRecord(c, cmn.GormDB, id)
		if err == nil {
			c.JSON(http.StatusOK, cmn.NewReply("success", newReply(record)))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			z.Error("failed to query divination record", zap.Error(err))
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: -1,
				Msg:    "查询占卜记录失败",
			})
			return
		}
		// 记录已不存在，重新占卜
	}

	numbers, err := ritual.ValidateNumbers(state.Numbers)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请输入3个1-99之间的数字",
		})
		return
	}

	result, source := h.svc.Divine(c, state.Wish, numbers)

	record, err := SaveRecord(c, cmn.GormDB, state.Wish, numbers, result, source)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "保存占卜记录失败",
		})
		return
	}

	state.DivinationId = record.Id.String()
	state.OfferingId = ""
	state.OfferingVerified = false
	err = ritual.Save(c, state)
	if err != nil {
		z.Error("failed to save ritual session", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "保存祈福进度失败",
		})
		return
	}

	z.Info("divination finished",
		zap.String("id", record.Id.String()),
		zap.String("source", string(source)),
		zap.Int("luck", record.Luck))

	c.JSON(http.StatusOK, cmn.NewReply("success", newReply(record)))
}

// HandleQueryDivination 按ID查询占卜记录
func (h *handler) HandleQueryDivination(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "占卜记录ID格式错误",
		})
		return
	}

	record, err := QueryRecord(c, cmn.GormDB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: 1,
				Msg:    "占卜记录不存在",
			})
			return
		}
		z.Error("failed to query divination record", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "查询占卜记录失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.NewReply("success", newReply(record)))
}
