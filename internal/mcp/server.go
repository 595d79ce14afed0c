// Package mcp exposes the doccheck operations as Model Context Protocol
// tools over stdio, so agent clients can run structure checks and form
// comparisons against a documentation directory.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/turbinedocs/doccheck/internal/checklist"
	"github.com/turbinedocs/doccheck/internal/cms"
	"github.com/turbinedocs/doccheck/internal/config"
	"github.com/turbinedocs/doccheck/internal/pdfform"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	extractor  *pdfform.Extractor
	comparator *pdfform.Comparator
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	extractor := pdfform.NewExtractor(cfg.IsDebug())
	s := &Server{
		config:     cfg,
		extractor:  extractor,
		comparator: pdfform.NewComparator(extractor),
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	structureCheckTool := mcp.NewTool(
		"structure_check",
		mcp.WithDescription("Check a documentation directory against a checklist specification and report per-tower completion"),
		mcp.WithString("directory",
			mcp.Description("Directory to check (uses the configured default if empty)"),
		),
		mcp.WithString("spec",
			mcp.Description("Checklist specification: 'turbine', 'jobbook', or a YAML file path"),
		),
	)
	s.mcpServer.AddTool(structureCheckTool, s.handleStructureCheck)

	formFieldsTool := mcp.NewTool(
		"form_fields",
		mcp.WithDescription("List the AcroForm fields of a PDF document with types and values"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(formFieldsTool, s.handleFormFields)

	formCompareTool := mcp.NewTool(
		"form_compare",
		mcp.WithDescription("Compare the form field statuses of review PDFs against a control PDF"),
		mcp.WithString("control",
			mcp.Required(),
			mcp.Description("Full path to the control PDF"),
		),
		mcp.WithString("reviews",
			mcp.Required(),
			mcp.Description("Comma-separated paths of review PDFs"),
		),
	)
	s.mcpServer.AddTool(formCompareTool, s.handleFormCompare)

	sifFillTool := mcp.NewTool(
		"sif_fill",
		mcp.WithDescription("Extract data from a CMS commissioning report and fill a SIF template PDF"),
		mcp.WithString("report",
			mcp.Required(),
			mcp.Description("Full path to the CMS report PDF"),
		),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Full path to the blank SIF template PDF"),
		),
		mcp.WithString("out",
			mcp.Required(),
			mcp.Description("Output path for the filled SIF PDF"),
		),
	)
	s.mcpServer.AddTool(sifFillTool, s.handleSIFFill)

	serverInfoTool := mcp.NewTool(
		"server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleStructureCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	directory := s.config.Directory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	specRef := s.config.SpecRef
	if ref, ok := args["spec"].(string); ok && ref != "" {
		specRef = ref
	}

	spec, err := checklist.LoadSpec(specRef)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := checklist.Collect(ctx, directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := checklist.CheckAll(spec, files)
	return mcp.NewToolResultText(s.formatSummary(directory, summary)), nil
}

// validateFileSize rejects PDFs above the configured size limit before any
// parsing happens.
func (s *Server) validateFileSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.Size() > s.config.MaxFileSize {
		return fmt.Errorf("file %s exceeds the maximum size of %d bytes", path, s.config.MaxFileSize)
	}
	return nil
}

func (s *Server) handleFormFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.validateFileSize(path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields, err := s.extractor.ExtractFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatFields(path, fields)), nil
}

func (s *Server) handleFormCompare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	control, err := request.RequireString("control")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reviewsArg, err := request.RequireString("reviews")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var reviews []string
	for _, p := range strings.Split(reviewsArg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			reviews = append(reviews, p)
		}
	}
	if len(reviews) == 0 {
		return mcp.NewToolResultError("at least one review path is required"), nil
	}

	for _, path := range append([]string{control}, reviews...) {
		if err := s.validateFileSize(path); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	result, err := s.comparator.CompareFiles(ctx, control, reviews)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatComparison(result)), nil
}

func (s *Server) handleSIFFill(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := request.RequireString("report")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	template, err := request.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := request.RequireString("out")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	for _, path := range []string{report, template} {
		if err := s.validateFileSize(path); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	data, fillReport, err := cms.ConvertFile(report, template, out, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := fmt.Sprintf("Filled SIF written to %s\n", out)
	text += fmt.Sprintf("Extracted %d field(s) from the CMS report\n", len(data.Values()))
	text += fmt.Sprintf("Filled %d of %d template field(s) (%.1f%% coverage)\n",
		len(fillReport.Filled), fillReport.TemplateFields, fillReport.Coverage())
	if len(fillReport.Skipped) > 0 {
		text += fmt.Sprintf("Values with no matching template field: %s\n", strings.Join(fillReport.Skipped, ", "))
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Default directory: %s\n", s.config.Directory)
	text += fmt.Sprintf("Default spec: %s\n", s.config.SpecRef)
	text += fmt.Sprintf("Max file size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	text += "Available tools:\n"
	text += "• structure_check - validate a documentation directory against a checklist\n"
	text += "• form_fields     - list the AcroForm fields of a PDF\n"
	text += "• form_compare    - compare review PDFs against a control PDF\n"
	text += "• sif_fill        - fill a SIF template from a CMS report\n"
	text += "• server_info     - this overview\n"

	return mcp.NewToolResultText(text), nil
}

// Formatting methods
func (s *Server) formatSummary(directory string, summary checklist.Summary) string {
	text := fmt.Sprintf("Structure check of %s (%s spec)\n", directory, summary.SpecName)
	text += fmt.Sprintf("%d of %d towers complete\n", summary.CompleteGroups, summary.TotalGroups)

	for _, group := range summary.Groups {
		text += fmt.Sprintf("\n%s: %d/%d documents\n", group.Group, group.TotalFound, group.TotalRequired)
		if group.Complete() {
			text += "  COMPLETE\n"
			continue
		}
		text += fmt.Sprintf("  %d missing:\n", len(group.Missing))
		for _, item := range group.Missing {
			text += fmt.Sprintf("  - [%s] %s\n", item.Category, item.Pattern)
		}
	}

	return text
}

func (s *Server) formatFields(path string, fields []pdfform.Field) string {
	if len(fields) == 0 {
		return fmt.Sprintf("No AcroForm fields found in %s", path)
	}

	text := fmt.Sprintf("Found %d form field(s) in %s\n\n", len(fields), path)
	for i, f := range fields {
		text += fmt.Sprintf("%d. %s\n", i+1, f.Name)
		text += fmt.Sprintf("   Type: %s\n", f.Type)
		if f.Value != "" {
			text += fmt.Sprintf("   Value: %s\n", f.Value)
		}
	}
	return text
}

func (s *Server) formatComparison(result *pdfform.ComparisonResult) string {
	text := fmt.Sprintf("Form field comparison against control %s\n", result.ControlName)

	for _, review := range result.Reviews {
		text += fmt.Sprintf("\n%s: %d fields, %.1f%% match\n",
			review.ReviewName, review.TotalFields, review.MatchPercent())
		if len(review.Mismatches) == 0 {
			text += "  100% MATCH\n"
			continue
		}
		for _, m := range review.Mismatches {
			text += fmt.Sprintf("  - %s: control %s (%q) vs review %s (%q)\n",
				m.Name, m.ControlStatus, m.ControlValue, m.ReviewStatus, m.ReviewValue)
		}
	}

	return text
}

// Run starts the MCP server on stdio.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting doccheck MCP server in stdio mode")
		log.Printf("Documentation directory: %s", s.config.Directory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
