package ui

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

const fetchTimeout = 15 * time.Second

// Fetcher retrieves a page body for in-place preview
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// PageOps handles result navigation: in-place document preview through the
// ov pager and external opening through the system browser.
type PageOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	fetcher Fetcher
}

// NewPageOps creates a new PageOps instance
func NewPageOps(fetcher Fetcher) *PageOps {
	return &PageOps{fetcher: fetcher}
}

// SetProgram sets the program reference for terminal management
func (p *PageOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// CanPreview reports whether in-place preview is wired up
func (p *PageOps) CanPreview() bool {
	return p != nil && p.fetcher != nil
}

// PreviewCmd returns a command that fetches the page and shows it in the
// ov pager, handing the terminal over for the duration.
func (p *PageOps) PreviewCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{url: url, err: p.preview(url)}
	}
}

func (p *PageOps) preview(url string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}
	if p.fetcher == nil {
		return fmt.Errorf("no fetcher configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	body, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay so ov has fully exited before restoring the terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(bytes.NewReader(body))
	if err != nil {
		return err
	}

	// Keep ov from writing to our screen on exit
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// OpenBrowserCmd returns a command that opens the URL in the system
// browser, the "new browsing context" path.
func (p *PageOps) OpenBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return browserDoneMsg{url: url, err: openBrowser(url)}
	}
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
