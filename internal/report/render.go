package report

import (
	"fmt"
	"strings"
	"time"
)

// RenderText serializes lines with plain-space padding and no markup.
func RenderText(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line.Cells) == 0 {
			out[i] = line.Text
			continue
		}
		parts := make([]string, len(line.Cells))
		for j, c := range line.Cells {
			pad := strings.Repeat(" ", c.Pad)
			if c.Right {
				parts[j] = pad + c.Text
			} else {
				parts[j] = c.Text + pad
			}
		}
		out[i] = strings.Join(parts, " | ")
	}
	return out
}

// RenderHTML serializes lines for mail: padding becomes non-breaking spaces
// so columns stay visually aligned, colors become inline span styles.
func RenderHTML(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line.Cells) == 0 {
			if line.Text == "" {
				out[i] = "&nbsp;"
			} else {
				out[i] = line.Text
			}
			continue
		}
		parts := make([]string, len(line.Cells))
		for j, c := range line.Cells {
			parts[j] = renderCellHTML(c)
		}
		out[i] = strings.Join(parts, " | ")
	}
	return out
}

func renderCellHTML(c Cell) string {
	pad := strings.Repeat("&nbsp;", c.Pad)
	text := c.Text
	if !c.Right {
		text += pad
	}
	if c.Bold {
		text = "<strong>" + text + "</strong>"
	}
	if c.Color != "" {
		text = fmt.Sprintf("<span style=%q>%s</span>", "color:"+c.Color+";", text)
	}
	if c.Right {
		text = pad + text
	}
	return text
}

const htmlTemplate = `<html>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
    <div style="background-color: #ffffff; padding: 20px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1);">
        <h2 style="color: #333333;">&#128200; Your Stocks Update for %s</h2>
        <pre style="font-family: 'Courier New', Courier, monospace; font-size: 14px; white-space: pre-wrap; color: #444;">
%s
        </pre>
    </div>
</body>
</html>
`

// HTMLBody wraps the rendered lines into the full HTML mail document.
func HTMLBody(lines []Line, date time.Time) string {
	return fmt.Sprintf(htmlTemplate, DateLabel(date), strings.Join(RenderHTML(lines), "\n"))
}
