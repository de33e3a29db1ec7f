package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager *newsportal.Manager) *zenrpc.Server {
	rpcService := NewAdminService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("admin", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "newsroom", nil))

	return rpcServer
}
