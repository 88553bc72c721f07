// Package ritualtest drives gin routers behind the ritual session in tests.
package ritualtest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/PolarTechJordan/richtemple/serve/ritual"
	"github.com/gin-gonic/gin"
)

// Setup 使用固定测试密钥初始化 ritual 模块
func Setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	err := ritual.Setup(ritual.Options{
		AuthKey:       []byte("ritual-test-auth-key-0123456789ab"),
		EncryptionKey: []byte("0123456789abcdef0123456789abcdef"),
		Currencies:    []string{"ETH", "USDT"},
	})
	if err != nil {
		t.Fatalf("ritual setup: %v", err)
	}
}

// Client 在请求之间保留 cookie，模拟同一个浏览器
type Client struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func NewClient(t *testing.T, handler http.Handler) *Client {
	return &Client{t: t, handler: handler, cookies: map[string]*http.Cookie{}}
}

// Do 发送请求，data 非 nil 时作为 ReqProto.Data 发送
func (c *Client) Do(method, path string, data any) cmn.ReplyProto {
	c.t.Helper()

	var body bytes.Buffer
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			c.t.Fatalf("marshal data: %v", err)
		}
		if err := json.NewEncoder(&body).Encode(cmn.ReqProto{Data: raw}); err != nil {
			c.t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}

	var reply cmn.ReplyProto
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		c.t.Fatalf("decode reply %q: %v", rec.Body.String(), err)
	}
	return reply
}

// Decode 把 reply.Data 解到 out
func Decode(t *testing.T, reply cmn.ReplyProto, out any) {
	t.Helper()
	if err := json.Unmarshal(reply.Data, out); err != nil {
		t.Fatalf("decode reply data %q: %v", string(reply.Data), err)
	}
}
