package ritual

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	ctxSessionKey = "ritual_session"
	ctxStateKey   = "ritual_state"
)

// session 中保存的字段
const (
	valWish             = "wish"
	valNumbers          = "numbers"
	valDivinationId     = "divination_id"
	valOfferingId       = "offering_id"
	valOfferingVerified = "offering_verified"
)

// State 一次祈福流程的进度：许愿 -> 选数 -> 占卜 -> 上香
type State struct {
	Wish             string `json:"wish"`
	Numbers          []int  `json:"numbers,omitempty"`
	DivinationId     string `json:"divinationId,omitempty"`
	OfferingId       string `json:"offeringId,omitempty"`
	OfferingVerified bool   `json:"offeringVerified"`
}

// HasNumbers 是否已选好三个数字
func (s State) HasNumbers() bool {
	return len(s.Numbers) == 3
}

// NumberTriple 以数组形式返回三个数字，调用前需确认 HasNumbers
func (s State) NumberTriple() [3]int {
	var out [3]int
	copy(out[:], s.Numbers)
	return out
}

// Middleware 把祈福 session 读入 gin 上下文
// cookie 无法解码时视为新流程，不中断请求
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionStore.Get(c.Request, ritualSessionKey)
		if err != nil {
			z.Warn("failed to decode ritual session, starting a new one", zap.Error(err))
		}

		c.Set(ctxSessionKey, session)
		c.Set(ctxStateKey, stateFromSession(session))

		c.Next()
	}
}

// RequireOffering 只允许已完成上香的流程访问
func RequireOffering() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, ok := Current(c)
		if !ok || !state.OfferingVerified {
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: 403,
				Msg:    "请先完成上香",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Current 从上下文中获取当前祈福进度，需在 Middleware 之后使用
func Current(c *gin.Context) (State, bool) {
	v, exists := c.Get(ctxStateKey)
	if !exists {
		return State{}, false
	}

	state, ok := v.(State)
	return state, ok
}

// Save 把祈福进度写回 session cookie
func Save(c *gin.Context, state State) error {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return fmt.Errorf("ritual session not found in context")
	}
	session, ok := v.(*sessions.Session)
	if !ok || session == nil {
		return fmt.Errorf("ritual session has unexpected type")
	}

	session.Values[valWish] = state.Wish
	session.Values[valNumbers] = joinNumbers(state.Numbers)
	session.Values[valDivinationId] = state.DivinationId
	session.Values[valOfferingId] = state.OfferingId
	session.Values[valOfferingVerified] = state.OfferingVerified

	err := session.Save(c.Request, c.Writer)
	if err != nil {
		return fmt.Errorf("failed to save ritual session: %w", err)
	}

	c.Set(ctxStateKey, state)
	return nil
}

func stateFromSession(session *sessions.Session) State {
	if session == nil {
		return State{}
	}

	var state State
	state.Wish, _ = session.Values[valWish].(string)
	state.DivinationId, _ = session.Values[valDivinationId].(string)
	state.OfferingId, _ = session.Values[valOfferingId].(string)
	state.OfferingVerified, _ = session.Values[valOfferingVerified].(bool)

	if raw, ok := session.Values[valNumbers].(string); ok {
		state.Numbers = splitNumbers(raw)
	}

	return state
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func splitNumbers(raw string) []int {
	if raw == "" {
		return nil
	}

	var numbers []int
	for _, p := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		numbers = append(numbers, n)
	}
	return numbers
}
