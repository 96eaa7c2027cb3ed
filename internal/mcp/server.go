// Package mcp 通过 MCP 协议把注册表暴露给外部客户端
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"foodgram-ui/internal/catalog"
	"foodgram-ui/internal/config"
	"foodgram-ui/internal/pkg/errors"
	"foodgram-ui/internal/util"
)

// 工具名称
const (
	ToolListRegistries = "list_registries"
	ToolListNames      = "list_names"
	ToolResolve        = "resolve"
)

// RegistryInfo 描述一个注册表
type RegistryInfo struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// ListNamesInput list_names 工具参数
type ListNamesInput struct {
	Registry string `json:"registry" jsonschema:"注册表种类，components 或 pages"`
}

// ResolveInput resolve 工具参数
type ResolveInput struct {
	Registry string `json:"registry" jsonschema:"注册表种类，components 或 pages"`
	Name     string `json:"name" jsonschema:"区分大小写的注册名称"`
}

// Server 包装 MCP 服务端，工具处理函数只读取不可变的注册表
type Server struct {
	registries *util.RegistryService
	server     *mcp.Server
}

// NewServer 创建服务端并注册全部工具
func NewServer(cfg config.MCPConfig, registries *util.RegistryService) *Server {
	s := &Server{
		registries: registries,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.ServerName,
			Version: cfg.ServerVersion,
		}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolListRegistries,
		Description: "列出所有注册表及其条目数量",
	}, s.listRegistries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolListNames,
		Description: "按声明顺序列出注册表中的全部名称",
	}, s.listNames)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolResolve,
		Description: "解析注册名称，返回其类型和定义模块",
	}, s.resolve)

	return s
}

// Run 在标准输入输出上提供服务，直到客户端断开或 ctx 取消
func (s *Server) Run(ctx context.Context) error {
	util.Infow("MCP服务启动", map[string]any{
		"registries": s.registries.Kinds(),
	})

	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return errors.WrapMCPError("MCP服务运行失败", err)
	}

	util.Infow("MCP服务已停止", nil)
	return nil
}

func (s *Server) listRegistries(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	catalogs := s.registries.All()
	infos := make([]RegistryInfo, 0, len(catalogs))
	for _, c := range catalogs {
		infos = append(infos, RegistryInfo{Kind: c.Kind(), Count: c.Len()})
	}
	return jsonResult(infos)
}

func (s *Server) listNames(ctx context.Context, req *mcp.CallToolRequest, in ListNamesInput) (*mcp.CallToolResult, any, error) {
	c, err := s.registries.Get(in.Registry)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(c.Names())
}

func (s *Server) resolve(ctx context.Context, req *mcp.CallToolRequest, in ResolveInput) (*mcp.CallToolResult, any, error) {
	c, err := s.registries.Get(in.Registry)
	if err != nil {
		return errorResult(err), nil, nil
	}

	item, err := c.Lookup(in.Name)
	if err != nil {
		util.Debugw("MCP解析失败", map[string]any{
			"registry": in.Registry,
			"name":     in.Name,
		})
		return errorResult(err), nil, nil
	}

	return jsonResult(catalog.EntryOf(item))
}

// jsonResult 将结果编码为文本内容
func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, util.WrapError(util.ErrCodeInternalErr, "编码工具结果失败", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// errorResult 以工具错误返回业务失败，协议层调用本身成功
func errorResult(err error) *mcp.CallToolResult {
	text := fmt.Sprintf("%s: %v", util.GetUserFriendlyMessage(err), err)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
