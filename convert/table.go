package convert

import (
	"golang.org/x/net/html"

	"hdc/content"
)

// buildTable converts a <table> into a rectangular grid. Column count is
// the widest row; short rows are padded with empty cells so every row has
// the same width.
func (c *Converter) buildTable(ctx *walkCtx, n *html.Node) {
	tableStyle := c.res.resolve(ctx.style, n)

	rows := findTableRows(n)
	if len(rows) == 0 {
		return
	}

	cols := 0
	for _, tr := range rows {
		if w := len(rowCells(tr)); w > cols {
			cols = w
		}
	}
	if cols == 0 {
		return
	}

	t := &content.Table{ColumnCount: cols}
	for _, tr := range rows {
		ctx.mark(tr)
		row := make([]content.Cell, cols)
		for j, cell := range rowCells(tr) {
			ctx.mark(cell)
			c.buildCell(ctx, &row[j], cell, tableStyle)
		}
		t.Rows = append(t.Rows, row)
	}
	ctx.emit(content.Block{Table: t})
}

// buildCell walks one td/th subtree as its own mini-document rooted at a
// fresh paragraph. Header cells force bold on every run they produce.
func (c *Converter) buildCell(ctx *walkCtx, cell *content.Cell, n *html.Node, inherited content.StyleState) {
	cell.Header = n.Data == "th"

	style := c.res.resolve(inherited, n)

	sub := &walkCtx{
		visited: ctx.visited,
		sink:    &cell.Blocks,
		style:   style,
		scope:   n,
	}
	p := &content.Paragraph{
		Alignment:     c.res.resolveAlignment(n),
		SpacingBefore: defaultSpacingPt,
		SpacingAfter:  defaultSpacingPt,
		LineSpacing:   style.LineHeight,
		Background:    style.Background,
	}
	cell.Blocks = append(cell.Blocks, content.Block{Paragraph: p})
	sub.para = p

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walkNode(sub, child)
	}

	if cell.Header {
		forceBold(cell.Blocks)
	}
}

// findTableRows collects descendant <tr> elements in document order,
// looking through thead/tbody/tfoot wrappers but not into nested tables.
func findTableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			switch child.Data {
			case "tr":
				rows = append(rows, child)
			case "table":
				continue
			default:
				walk(child)
			}
		}
	}
	walk(table)
	return rows
}

// rowCells returns the direct td/th children of a row.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if child.Data == "td" || child.Data == "th" {
			cells = append(cells, child)
		}
	}
	return cells
}

func forceBold(blocks []content.Block) {
	for i := range blocks {
		b := &blocks[i]
		switch {
		case b.Paragraph != nil:
			for j := range b.Paragraph.Runs {
				b.Paragraph.Runs[j].Style.Bold = true
			}
		case b.ListItem != nil:
			for j := range b.ListItem.Paragraph.Runs {
				b.ListItem.Paragraph.Runs[j].Style.Bold = true
			}
			forceBold(b.ListItem.Nested)
		case b.Table != nil:
			for r := range b.Table.Rows {
				for c := range b.Table.Rows[r] {
					forceBold(b.Table.Rows[r][c].Blocks)
				}
			}
		}
	}
}
