// Package sampledocs writes a small corpus of categorized .docx files for
// trying out the merge pipeline. Filenames follow the Category_Title
// convention the categorizer expects.
package sampledocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/docnav/internal/opc"
	"github.com/dgallion1/docnav/internal/section"
	"github.com/dgallion1/docnav/internal/wml"
)

type sample struct {
	filename string
	title    string
	blocks   []section.Section
}

func heading(text string, level int) section.Section {
	return section.Section{Title: text, Level: level, Text: text, Type: "heading"}
}

func para(text string) section.Section {
	return section.Section{Text: text, Type: "paragraph"}
}

func bullet(text string) section.Section {
	return section.Section{Text: text, Type: "list"}
}

var samples = []sample{
	{
		filename: "Finance_Quarterly Report Q1.docx",
		title:    "Q1 Financial Report",
		blocks: []section.Section{
			heading("Executive Summary", 2),
			para("This quarter showed strong growth across all key metrics."),
			heading("Revenue", 2),
			bullet("Total Revenue: $5.2M"),
			bullet("Growth: 15% YoY"),
			bullet("New Customers: 127"),
			heading("Expenses", 2),
			para("Operating expenses remained within budget at $3.1M."),
		},
	},
	{
		filename: "Finance_Quarterly Report Q2.docx",
		title:    "Q2 Financial Report",
		blocks: []section.Section{
			heading("Executive Summary", 2),
			para("Q2 continued the positive momentum from Q1."),
			heading("Revenue", 2),
			bullet("Total Revenue: $6.1M"),
			bullet("Growth: 17% YoY"),
			bullet("New Customers: 156"),
			heading("Outlook", 2),
			para("We expect continued growth in Q3 and Q4."),
		},
	},
	{
		filename: "HR_Employee Handbook.docx",
		title:    "Employee Handbook",
		blocks: []section.Section{
			heading("Welcome", 2),
			para("Welcome to our company! This handbook contains important information."),
			heading("Company Values", 2),
			bullet("Integrity"),
			bullet("Innovation"),
			bullet("Collaboration"),
			heading("Policies", 2),
			para("All employees must follow company policies as outlined below."),
			heading("Time Off", 3),
			para("Employees receive 15 days of PTO annually."),
		},
	},
	{
		filename: "HR_Payroll Guidelines.docx",
		title:    "Payroll Guidelines",
		blocks: []section.Section{
			heading("Pay Schedule", 2),
			para("Employees are paid bi-weekly on Fridays."),
			heading("Direct Deposit", 2),
			para("All employees must set up direct deposit within 30 days."),
			heading("Benefits", 2),
			bullet("Health Insurance"),
			bullet("401(k) Matching"),
			bullet("Life Insurance"),
		},
	},
	{
		filename: "Marketing_Brand Guidelines.docx",
		title:    "Brand Guidelines",
		blocks: []section.Section{
			heading("Brand Identity", 2),
			para("Our brand represents innovation and reliability."),
			heading("Logo Usage", 2),
			para("The logo must maintain minimum clear space of 0.5 inches."),
			heading("Color Palette", 2),
			bullet("Primary: Blue (#0066CC)"),
			bullet("Secondary: Gray (#666666)"),
			bullet("Accent: Green (#00AA44)"),
		},
	},
	{
		filename: "Marketing_Campaign Plan 2025.docx",
		title:    "2025 Marketing Campaign",
		blocks: []section.Section{
			heading("Campaign Overview", 2),
			para("The 2025 campaign focuses on digital transformation."),
			heading("Target Audience", 2),
			bullet("Enterprise customers"),
			bullet("SMB segment"),
			bullet("Startups"),
			heading("Channels", 2),
			para("We will leverage multiple channels including social media, email, and events."),
			heading("Budget", 2),
			para("Total budget: $2.5M allocated across all channels."),
		},
	},
}

// Generate writes the sample corpus into dir and returns the created paths
// in write order.
func Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	var created []string
	for _, s := range samples {
		path := filepath.Join(dir, s.filename)
		if err := writeSample(path, s); err != nil {
			return created, err
		}
		created = append(created, path)
	}
	return created, nil
}

func writeSample(path string, s sample) error {
	items := []any{wml.Heading(s.title, 1, "", 0)}
	for _, b := range s.blocks {
		switch b.Type {
		case "heading":
			items = append(items, wml.Heading(b.Title, b.Level, "", 0))
		case "list":
			items = append(items, wml.ListParagraph(b.Text))
		default:
			items = append(items, wml.TextParagraph(b.Text))
		}
	}

	body, err := wml.Marshal(items...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := opc.Write(f, opc.Document{BodyXML: body}); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
