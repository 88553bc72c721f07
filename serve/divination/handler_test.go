package divination_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/PolarTechJordan/richtemple/cmn/dbtest"
	divcore "github.com/PolarTechJordan/richtemple/cmn/divination"
	"github.com/PolarTechJordan/richtemple/cmn/llm"
	"github.com/PolarTechJordan/richtemple/serve/divination"
	"github.com/PolarTechJordan/richtemple/serve/ritual"
	"github.com/PolarTechJordan/richtemple/serve/ritual/ritualtest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLLM struct {
	calls int
}

func (l *countingLLM) Chat(context.Context, string, string) (string, error) {
	l.calls++
	return "", llm.ErrDisabled
}

func (l *countingLLM) ChatContent(context.Context, string, string) (any, error) {
	l.calls++
	return nil, llm.ErrDisabled
}

func newRouter(t *testing.T, l llm.Service) *gin.Engine {
	t.Helper()
	ritualtest.Setup(t)

	rh := ritual.NewHandler()
	dh := divination.NewHandler(divination.NewService(l))

	r := gin.New()
	r.Use(ritual.Middleware())
	r.POST("/ritual/wish", rh.HandleSetWish)
	r.POST("/ritual/numbers", rh.HandleSetNumbers)
	r.POST("/divination", dh.HandleDivine)
	r.GET("/divination/:id", dh.HandleQueryDivination)
	return r
}

func TestHandleDivine(t *testing.T) {
	dbtest.Open(t)
	l := &countingLLM{}
	client := ritualtest.NewClient(t, newRouter(t, l))

	reply := client.Do(http.MethodPost, "/divination", nil)
	assert.Equal(t, 1, reply.Status, "no wish yet")

	client.Do(http.MethodPost, "/ritual/wish", map[string]any{"wish": "考试顺利"})
	reply = client.Do(http.MethodPost, "/divination", nil)
	assert.Equal(t, 1, reply.Status, "no numbers yet")

	client.Do(http.MethodPost, "/ritual/numbers", map[string]any{"numbers": []int{6, 6, 6}})

	reply = client.Do(http.MethodPost, "/divination", nil)
	require.Equal(t, 0, reply.Status, reply.Msg)

	var first divination.Reply
	ritualtest.Decode(t, reply, &first)
	assert.Equal(t, "考试顺利", first.Wish)
	assert.Equal(t, [3]int{6, 6, 6}, first.Numbers)
	assert.Equal(t, divination.SourceFallback, first.Source)
	assert.Equal(t, divcore.ComputeFallback("考试顺利", [3]int{6, 6, 6}), first.Result)
	assert.Equal(t, 1, l.calls)

	// 同一流程再次请求返回已保存的结果
	reply = client.Do(http.MethodPost, "/divination", nil)
	require.Equal(t, 0, reply.Status)
	var second divination.Reply
	ritualtest.Decode(t, reply, &second)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, 1, l.calls)

	reply = client.Do(http.MethodGet, "/divination/"+first.Id.String(), nil)
	require.Equal(t, 0, reply.Status)
	var queried divination.Reply
	ritualtest.Decode(t, reply, &queried)
	assert.Equal(t, first, queried)

	// 重新许愿后开始新的占卜
	client.Do(http.MethodPost, "/ritual/wish", map[string]any{"wish": "考试顺利"})
	client.Do(http.MethodPost, "/ritual/numbers", map[string]any{"numbers": []int{6, 6, 6}})
	reply = client.Do(http.MethodPost, "/divination", nil)
	require.Equal(t, 0, reply.Status)
	var third divination.Reply
	ritualtest.Decode(t, reply, &third)
	assert.NotEqual(t, first.Id, third.Id)
}

func TestHandleQueryDivination(t *testing.T) {
	dbtest.Open(t)
	client := ritualtest.NewClient(t, newRouter(t, nil))

	reply := client.Do(http.MethodGet, "/divination/not-a-uuid", nil)
	assert.Equal(t, 1, reply.Status)

	reply = client.Do(http.MethodGet, "/divination/"+uuid.NewString(), nil)
	assert.Equal(t, 1, reply.Status)

	var count int64
	require.NoError(t, cmn.GormDB.Model(&cmn.TDivination{}).Count(&count).Error)
	assert.Zero(t, count)
}
