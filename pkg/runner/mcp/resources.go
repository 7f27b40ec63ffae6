package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	dataURI         = "cyberride://data"
	achievementsURI = "cyberride://achievements"
	reportURI       = "cyberride://report"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	for _, r := range resources(svc) {
		srv.AddResource(r.def, r.read)
	}
}

type resource struct {
	def  mcp.Resource
	read server.ResourceHandlerFunc
}

func resources(svc *Service) []resource {
	return []resource{
		{
			def: mcp.NewResource(dataURI, "Tracker Data",
				mcp.WithResourceDescription("The complete tracker state: rides, tasks, components, gear, events, fuel, trips and achievements."),
				mcp.WithMIMEType("application/json"),
			),
			read: func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return encodeResourceJSON(request.Params.URI, svc.App.Data())
			},
		},
		{
			def: mcp.NewResource(achievementsURI, "Achievements",
				mcp.WithResourceDescription("Achievements with unlock state and progress."),
				mcp.WithMIMEType("application/json"),
			),
			read: func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return encodeResourceJSON(request.Params.URI, svc.Achievements())
			},
		},
		{
			def: mcp.NewResource(reportURI, "Dashboard",
				mcp.WithResourceDescription("Overdue tasks, critical components, recent rides, recent achievements and upcoming events."),
				mcp.WithMIMEType("application/json"),
			),
			read: func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				d, err := svc.Report("")
				if err != nil {
					return nil, err
				}
				return encodeResourceJSON(request.Params.URI, d)
			},
		},
	}
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
