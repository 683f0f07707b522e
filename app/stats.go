package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/db"
	"github.com/laceandcraft/storefront/internal/db/controller/contact"
	"github.com/laceandcraft/storefront/internal/db/controller/content"
	"github.com/laceandcraft/storefront/internal/db/controller/visitor"
)

const (
	statsDays     = 14
	statsTopPages = 10
)

var statsJSON bool

func init() { //nolint: gochecknoinits
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(statsCmd)
}

// Stats is the dashboard overview printed by the stats command.
type Stats struct {
	Visitors    visitor.Summary    `json:"visitors"`
	Daily       []visitor.DayCount `json:"daily"`
	TopPages    []visitor.Count    `json:"top_pages"`
	Devices     []visitor.Count    `json:"devices"`
	Browsers    []visitor.Count    `json:"browsers"`
	Content     content.Overview   `json:"content"`
	NewMessages int64              `json:"new_messages"`
}

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Print visitor statistics and a content overview",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gdb, err := db.Open(&cfg)
		if err != nil {
			return err
		}

		s, err := CollectStats(cmd.Context(), gdb, visitor.New(gdb))
		if err != nil {
			return err
		}

		if statsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(s)
		}

		return PrintStats(cmd.OutOrStdout(), s)
	},
}

// CollectStats gathers the dashboard overview.
func CollectStats(ctx context.Context, gdb *gorm.DB, visitors *visitor.Repository) (*Stats, error) {
	var (
		s   = &Stats{}
		err error
	)

	if ctx == nil {
		ctx = context.Background()
	}

	if s.Visitors, err = visitors.Summary(ctx); err != nil {
		return nil, err
	}
	if s.Daily, err = visitors.DailySeries(ctx, statsDays); err != nil {
		return nil, err
	}
	if s.TopPages, err = visitors.TopPages(ctx, statsTopPages); err != nil {
		return nil, err
	}
	if s.Devices, err = visitors.DeviceBreakdown(ctx); err != nil {
		return nil, err
	}
	if s.Browsers, err = visitors.BrowserBreakdown(ctx); err != nil {
		return nil, err
	}
	if s.Content, err = content.CountActive(gdb); err != nil {
		return nil, err
	}
	if s.NewMessages, err = contact.CountNew(gdb); err != nil {
		return nil, err
	}

	return s, nil
}

// PrintStats writes s as aligned tables.
func PrintStats(out io.Writer, s *Stats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "VISITORS\t")
	fmt.Fprintf(w, "today\t%d (%d unique)\n", s.Visitors.Today, s.Visitors.TodayUnique)
	fmt.Fprintf(w, "this week\t%d\n", s.Visitors.Week)
	fmt.Fprintf(w, "this month\t%d\n", s.Visitors.Month)
	fmt.Fprintf(w, "total\t%d (%d unique)\n", s.Visitors.Total, s.Visitors.Unique)

	fmt.Fprintf(w, "\nLAST %d DAYS\t\n", len(s.Daily))
	for _, d := range s.Daily {
		fmt.Fprintf(w, "%s\t%d\n", d.Label, d.Count)
	}

	sections := []struct {
		title  string
		counts []visitor.Count
	}{
		{"TOP PAGES", s.TopPages},
		{"DEVICES", s.Devices},
		{"BROWSERS", s.Browsers},
	}
	for _, sec := range sections {
		fmt.Fprintf(w, "\n%s\t\n", sec.title)
		for _, c := range sec.counts {
			fmt.Fprintf(w, "%s\t%d\n", c.Label, c.Count)
		}
	}

	fmt.Fprintln(w, "\nCONTENT\t")
	fmt.Fprintf(w, "categories\t%d\n", s.Content.Categories)
	fmt.Fprintf(w, "gallery items\t%d\n", s.Content.Gallery)
	fmt.Fprintf(w, "testimonials\t%d\n", s.Content.Testimonials)
	fmt.Fprintf(w, "new messages\t%d\n", s.NewMessages)

	return w.Flush()
}
