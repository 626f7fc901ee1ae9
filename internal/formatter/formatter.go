// package formatter provides functions to export catalog views to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/vidcat/internal/models"
)

// categoryNames joins category names for single-cell display.
func categoryNames(categories []models.CategoryEntity) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// ExportVideosCSV converts video views to CSV with columns: ID, Name, Author, Categories
func ExportVideosCSV(videos []models.VideoView) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Author", "Categories"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, v := range videos {
		record := []string{
			strconv.FormatInt(v.ID, 10),
			v.Name,
			v.Author.Name,
			categoryNames(v.Categories),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportVideosMarkdown converts video views to a Markdown table.
func ExportVideosMarkdown(videos []models.VideoView) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Videos\n\n")
	buf.WriteString("| ID | Name | Author | Categories |\n")
	buf.WriteString("|----|------|--------|------------|\n")

	for _, v := range videos {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", v.ID, v.Name, v.Author.Name, categoryNames(v.Categories))
	}

	return buf.Bytes()
}

// ExportVideosText converts video views to aligned plain text.
func ExportVideosText(videos []models.VideoView) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Videos (%d)\n\n", len(videos))
	for i, v := range videos {
		fmt.Fprintf(&buf, "%3d. %s\n", i+1, v.Name)
		fmt.Fprintf(&buf, "     Author: %s\n", v.Author.Name)
		if len(v.Categories) > 0 {
			fmt.Fprintf(&buf, "     Categories: %s\n", categoryNames(v.Categories))
		}
	}

	return buf.Bytes()
}

// ExportAuthorsMarkdown converts author views to Markdown, one section per
// author with a video list.
func ExportAuthorsMarkdown(authors []models.AuthorView) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Authors\n\n")
	for _, a := range authors {
		fmt.Fprintf(&buf, "## %s\n\n", a.Name)
		if len(a.Videos) == 0 {
			buf.WriteString("_No videos._\n\n")
			continue
		}
		for _, v := range a.Videos {
			if len(v.Categories) > 0 {
				fmt.Fprintf(&buf, "- %s (%s)\n", v.Name, categoryNames(v.Categories))
			} else {
				fmt.Fprintf(&buf, "- %s\n", v.Name)
			}
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}
