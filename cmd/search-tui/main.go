package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/openhire/jobboard-be/internal/client/jobsapi"
	"github.com/openhire/jobboard-be/internal/client/orchestrator"
	"github.com/openhire/jobboard-be/internal/client/state"
	"github.com/openhire/jobboard-be/internal/client/store"
	"github.com/openhire/jobboard-be/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
)

// CLI is the top-level command structure for the job search client.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	APIURL  string           `help:"Jobs API base URL." default:"http://localhost:8080" name:"api-url"`

	Browse BrowseCmd `cmd:"" default:"1" help:"Open the interactive job browser."`
	Search SearchCmd `cmd:"" help:"Print one page of the listing as plain text."`
}

// BrowseCmd launches the interactive TUI.
type BrowseCmd struct{}

// Run starts the Bubble Tea program with the store bridged into it.
func (b *BrowseCmd) Run(cli *CLI) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse: requires a terminal (TTY), use the search command instead")
	}

	st := store.New()
	api := jobsapi.NewClient(cli.APIURL)
	// Log lines would corrupt the alternate screen, so the TUI runs silent.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := orchestrator.New(st, api, logger)

	p := tea.NewProgram(tui.NewModel(orch), tea.WithAltScreen())
	st.Subscribe(func(snap state.State) {
		p.Send(tui.StateMsg(snap))
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

// SearchCmd prints results without a TUI, for pipes and scripts.
type SearchCmd struct {
	Keyword string `arg:"" optional:"" help:"Keyword to filter titles by."`
	Page    int    `help:"Page to fetch." default:"1"`
	Detail  int    `help:"Print the detail of one job ID instead of the listing." default:"0"`
}

// Run fetches and prints one page or one detail.
func (s *SearchCmd) Run(cli *CLI) error {
	api := jobsapi.NewClient(cli.APIURL)
	ctx := context.Background()

	if s.Detail > 0 {
		detail, err := api.FetchDetail(ctx, s.Detail)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		printDetail(os.Stdout, detail)
		return nil
	}

	resp, err := api.FetchTitles(ctx, s.Page, s.Keyword)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if len(resp.Titles) == 0 {
		fmt.Printf("No jobs found for \"%s\" try another search term.\n", s.Keyword)
		return nil
	}

	for _, t := range resp.Titles {
		fmt.Printf("%6d  %-40s %-24s %s\n", t.ID, t.Title, t.Company, t.Location)
	}
	fmt.Printf("\npage %d of %d (%d jobs)\n",
		resp.Pagination.CurrentPage, resp.Pagination.TotalPages, resp.Pagination.TotalItems)
	return nil
}

func printDetail(w io.Writer, d *state.JobDetail) {
	fmt.Fprintf(w, "Job #%d\n", d.JobID)
	fmt.Fprintf(w, "Type:     %s\n", d.Type)
	fmt.Fprintf(w, "Salary:   %s\n", d.Salary)
	fmt.Fprintf(w, "Skills:   %s\n", strings.Join(d.Skills, ", "))
	fmt.Fprintf(w, "Benefits: %s\n", strings.Join(d.Benefits, ", "))
	fmt.Fprintf(w, "Posted:   %s\n", d.CreationDate)
	fmt.Fprintf(w, "Link:     %s\n\n", d.Link)
	fmt.Fprintln(w, d.Description)
	if d.RetrievalInfo != "" {
		fmt.Fprintf(w, "\n%s\n", d.RetrievalInfo)
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit})
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
