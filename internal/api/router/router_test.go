package router

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	RegisterRoutes(h, nil)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestNoRoute(t *testing.T) {
	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	RegisterRoutes(h, nil)

	resp := ut.PerformRequest(h.Engine, "GET", "/tidak/ada", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"Endpoint tidak ditemukan"}`, resp.Body.String())
}

func TestRecovery(t *testing.T) {
	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	h.Use(Recovery())
	h.GET("/boom", func(c context.Context, ctx *app.RequestContext) {
		panic("sesuatu yang buruk")
	})

	resp := ut.PerformRequest(h.Engine, "GET", "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Terjadi kesalahan tak terduga"}`, resp.Body.String())
	// panic细节不进响应
	assert.NotContains(t, resp.Body.String(), "sesuatu yang buruk")
}
