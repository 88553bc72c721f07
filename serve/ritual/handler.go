package ritual

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler interface {
	HandleGetState(c *gin.Context)
	HandleSetWish(c *gin.Context)
	HandleSetNumbers(c *gin.Context)
	HandleOffering(c *gin.Context)
	HandleReset(c *gin.Context)
	HandleShare(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// bindData 解析 ReqProto.Data 到 out，失败时已写回响应
func bindData(c *gin.Context, out any) bool {
	var req cmn.ReqProto
	err := c.ShouldBindJSON(&req)
	if err != nil {
		z.Error("failed to bind request JSON", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请求体结构错误",
		})
		return false
	}

	err = json.Unmarshal(req.Data, out)
	if err != nil {
		z.Error("failed to unmarshal request data", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请求体数据错误",
		})
		return false
	}

	return true
}

func saveAndReply(c *gin.Context, state State, msg string) {
	err := Save(c, state)
	if err != nil {
		z.Error("failed to save ritual session", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "保存祈福进度失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.NewReply(msg, state))
}

// HandleGetState 查询当前祈福进度
func (h *handler) HandleGetState(c *gin.Context) {
	state, _ := Current(c)
	c.JSON(http.StatusOK, cmn.NewReply("success", state))
}

// HandleSetWish 许愿，重新开始之后的流程
func (h *handler) HandleSetWish(c *gin.Context) {
	var data struct {
		Wish string `json:"wish"`
	}
	if !bindData(c, &data) {
		return
	}

	wish, err := ValidateWish(data.Wish)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "愿望不能为空且不能超过长度限制",
		})
		return
	}

	saveAndReply(c, State{Wish: wish}, "愿望已记录")
}

// HandleSetNumbers 选择三个数字
func (h *handler) HandleSetNumbers(c *gin.Context) {
	state, _ := Current(c)
	if state.Wish == "" {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请先许愿",
		})
		return
	}

	var data struct {
		Numbers []int `json:"numbers"`
	}
	if !bindData(c, &data) {
		return
	}

	numbers, err := ValidateNumbers(data.Numbers)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请输入3个1-99之间的数字",
		})
		return
	}

	saveAndReply(c, State{Wish: state.Wish, Numbers: numbers[:]}, "数字已记录")
}

// HandleOffering 上香：记录支付声明并标记流程完成
func (h *handler) HandleOffering(c *gin.Context) {
	state, _ := Current(c)
	divinationId, err := uuid.Parse(state.DivinationId)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请先完成占卜",
		})
		return
	}

	var data Offering
	if !bindData(c, &data) {
		return
	}

	offering, err := data.Validate()
	if err != nil {
		z.Info("invalid offering", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请输入有效的香火数量与钱包地址",
		})
		return
	}

	record, err := RecordOffering(c, cmn.GormDB, divinationId, offering)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: 1,
				Msg:    "占卜记录不存在，请重新占卜",
			})
			return
		}
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "上香失败，请重试",
		})
		return
	}

	state.OfferingId = record.Id.String()
	state.OfferingVerified = true

	saveAndReply(c, state, "上香成功")
}

// HandleReset 再次祈福，清空进度
func (h *handler) HandleReset(c *gin.Context) {
	saveAndReply(c, State{}, "已重新开始")
}

const shareText = "我在财神殿完成了祈福上香，愿望已传达至神明！🙏 #RichTemple #财神殿 #Web3祈福"

// HandleShare 生成分享到 X(Twitter) 的链接，需在 RequireOffering 之后使用
func (h *handler) HandleShare(c *gin.Context) {
	origin := publicUrl
	if origin == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		origin = scheme + "://" + c.Request.Host
	}

	q := url.Values{}
	q.Set("text", shareText)
	q.Set("url", origin)

	c.JSON(http.StatusOK, cmn.NewReply("success", gin.H{
		"text":     shareText,
		"url":      origin,
		"shareUrl": "https://twitter.com/intent/tweet?" + q.Encode(),
	}))
}
