package ritual_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/PolarTechJordan/richtemple/cmn/dbtest"
	"github.com/PolarTechJordan/richtemple/serve/ritual"
	"github.com/PolarTechJordan/richtemple/serve/ritual/ritualtest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallet = "0x52908400098527886E0F7030069857D2E4169EE7"

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ritualtest.Setup(t)

	h := ritual.NewHandler()
	r := gin.New()
	r.Use(ritual.Middleware())
	r.GET("/ritual", h.HandleGetState)
	r.POST("/ritual/wish", h.HandleSetWish)
	r.POST("/ritual/numbers", h.HandleSetNumbers)
	r.POST("/ritual/offering", h.HandleOffering)
	r.DELETE("/ritual", h.HandleReset)
	r.GET("/merit/share", ritual.RequireOffering(), h.HandleShare)
	r.GET("/merit", ritual.RequireOffering(), func(c *gin.Context) {
		c.JSON(http.StatusOK, cmn.ReplyProto{Status: 0, Msg: "merit"})
	})

	// 模拟占卜完成：把占卜记录ID写入 session
	r.POST("/test/divined/:id", func(c *gin.Context) {
		state, _ := ritual.Current(c)
		state.DivinationId = c.Param("id")
		require.NoError(t, ritual.Save(c, state))
		c.JSON(http.StatusOK, cmn.ReplyProto{Status: 0})
	})

	return r
}

func state(t *testing.T, reply cmn.ReplyProto) ritual.State {
	t.Helper()
	var s ritual.State
	ritualtest.Decode(t, reply, &s)
	return s
}

func TestRitualFlow(t *testing.T) {
	db := dbtest.Open(t)
	client := ritualtest.NewClient(t, newRouter(t))

	reply := client.Do(http.MethodPost, "/ritual/numbers", map[string]any{"numbers": []int{1, 2, 3}})
	assert.Equal(t, 1, reply.Status, "numbers before wish")

	reply = client.Do(http.MethodPost, "/ritual/wish", map[string]any{"wish": "  财源广进  "})
	require.Equal(t, 0, reply.Status, reply.Msg)
	assert.Equal(t, "财源广进", state(t, reply).Wish)

	reply = client.Do(http.MethodPost, "/ritual/numbers", map[string]any{"numbers": []int{1, 100, 3}})
	assert.Equal(t, 1, reply.Status)

	reply = client.Do(http.MethodPost, "/ritual/numbers", map[string]any{"numbers": []int{12, 34, 56}})
	require.Equal(t, 0, reply.Status, reply.Msg)

	reply = client.Do(http.MethodGet, "/ritual", nil)
	got := state(t, reply)
	assert.Equal(t, "财源广进", got.Wish)
	assert.Equal(t, []int{12, 34, 56}, got.Numbers)
	assert.False(t, got.OfferingVerified)

	offering := map[string]any{"amount": "0.01", "currency": "eth", "walletAddress": wallet}

	reply = client.Do(http.MethodPost, "/ritual/offering", offering)
	assert.Equal(t, 1, reply.Status, "offering before divination")

	reply = client.Do(http.MethodGet, "/merit", nil)
	assert.Equal(t, 403, reply.Status)

	divination := cmn.TDivination{Id: uuid.New(), Wish: "财源广进", Success: true, Luck: 9}
	require.NoError(t, db.Create(&divination).Error)
	client.Do(http.MethodPost, "/test/divined/"+divination.Id.String(), nil)

	reply = client.Do(http.MethodPost, "/ritual/offering", map[string]any{"amount": "0", "currency": "ETH", "walletAddress": wallet})
	assert.Equal(t, 1, reply.Status)

	reply = client.Do(http.MethodPost, "/ritual/offering", offering)
	require.Equal(t, 0, reply.Status, reply.Msg)
	got = state(t, reply)
	assert.True(t, got.OfferingVerified)

	var record cmn.TOffering
	require.NoError(t, db.Where("id = ?", got.OfferingId).First(&record).Error)
	assert.Equal(t, divination.Id, record.DivinationId)
	assert.Equal(t, "ETH", record.Currency)

	reply = client.Do(http.MethodGet, "/merit", nil)
	assert.Equal(t, 0, reply.Status)

	reply = client.Do(http.MethodGet, "/merit/share", nil)
	require.Equal(t, 0, reply.Status)
	var share struct {
		Url      string `json:"url"`
		ShareUrl string `json:"shareUrl"`
	}
	ritualtest.Decode(t, reply, &share)
	assert.Equal(t, "http://example.com", share.Url)
	assert.True(t, strings.HasPrefix(share.ShareUrl, "https://twitter.com/intent/tweet?"))
	assert.Contains(t, share.ShareUrl, "url=http%3A%2F%2Fexample.com")

	reply = client.Do(http.MethodDelete, "/ritual", nil)
	require.Equal(t, 0, reply.Status)
	assert.Equal(t, ritual.State{}, state(t, reply))

	reply = client.Do(http.MethodGet, "/merit", nil)
	assert.Equal(t, 403, reply.Status)
}

func TestOfferingForMissingDivination(t *testing.T) {
	dbtest.Open(t)
	client := ritualtest.NewClient(t, newRouter(t))

	client.Do(http.MethodPost, "/ritual/wish", map[string]any{"wish": "平安"})
	client.Do(http.MethodPost, "/test/divined/"+uuid.NewString(), nil)

	reply := client.Do(http.MethodPost, "/ritual/offering", map[string]any{"amount": "5", "currency": "USDT", "walletAddress": wallet})
	assert.Equal(t, 1, reply.Status)
}

func TestSetWishRejectsBadBody(t *testing.T) {
	client := ritualtest.NewClient(t, newRouter(t))

	reply := client.Do(http.MethodPost, "/ritual/wish", map[string]any{"wish": "   "})
	assert.Equal(t, 1, reply.Status)

	reply = client.Do(http.MethodPost, "/ritual/wish", json.RawMessage(`"not an object"`))
	assert.Equal(t, 1, reply.Status)
}
